/* models_test.go
 * Contains unit tests for models.go
 */

package external

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusError_Error(t *testing.T) {
	err := &StatusError{StatusCode: 503, Status: "503 Service Unavailable"}
	assert.Equal(t, "response status code does not indicate success: 503 Service Unavailable", err.Error())
}

func TestResponseData_Container(t *testing.T) {
	tournament := &EventContainer{}
	league := &EventContainer{}
	data := &ResponseData{Tournament: tournament, League: league}

	assert.Same(t, tournament, data.container(Tournament))
	assert.Same(t, league, data.container(League))
	assert.Nil(t, data.container(ResourceKind("series")))

	var nilData *ResponseData
	assert.Nil(t, nilData.container(Tournament))
}
