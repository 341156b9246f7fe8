/* query.go
 * Contains the GraphQL query text used to request event standings
 */

package external

import "fmt"

// standingsQuery is shared by tournaments and leagues, only the root field differs. The first page of 100 standings
// is requested for every event
const standingsQuery = `
{
    %s(slug: "%s") {
        events {
            id
            name
            standings(query: {perPage: 100, page: 1}) {
                nodes {
                    entrant {
                        id
                        name
                    }
                    placement
                }
            }
        }
    }
}`

// BuildStandingsQuery returns the standings query for a tournament or league. The slug is inserted as is, a slug
// containing a quote produces an invalid query
func BuildStandingsQuery(kind ResourceKind, slug string) string {
	return fmt.Sprintf(standingsQuery, kind, slug)
}
