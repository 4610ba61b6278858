package pagination

// Meta is returned to the client alongside a page of data.
type Meta struct {
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	Total      int    `json:"total"`
	TotalPages int    `json:"totalPages"`
	HasNext    bool   `json:"hasNext"`
	HasPrev    bool   `json:"hasPrev"`
	SortBy     string `json:"sortBy"`
	Order      Order  `json:"order"`
}

// BuildMeta derives page counts and navigation flags. TotalPages is at least 1
// so an empty collection still reports a single (empty) page.
func BuildMeta(q Query, total int) Meta {
	totalPages := 1
	if q.Limit > 0 && total > 0 {
		totalPages = (total + q.Limit - 1) / q.Limit
	}

	return Meta{
		Page:       q.Page,
		Limit:      q.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    q.Page < totalPages,
		HasPrev:    q.Page > 1,
		SortBy:     q.SortBy,
		Order:      q.Order,
	}
}
