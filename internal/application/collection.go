package application

import (
	"github.com/hireline/screener-backend/internal/application/query"
)

// Queries is the read surface the dashboard server is built on.
type Queries struct {
	List   *query.ListCandidates
	Top    *query.TopCandidates
	Verify *query.VerifyDataset
}

func NewQueries(list *query.ListCandidates, top *query.TopCandidates, verify *query.VerifyDataset) *Queries {
	return &Queries{List: list, Top: top, Verify: verify}
}
