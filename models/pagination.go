package models

// PerPage is the fixed page size for every paginated listing.
const PerPage = 10

type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

func NewPagination(page int, total int64) Pagination {
	pages := int((total + PerPage - 1) / PerPage)
	return Pagination{
		Page:       page,
		PerPage:    PerPage,
		Total:      total,
		TotalPages: pages,
	}
}
