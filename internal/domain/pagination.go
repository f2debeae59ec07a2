package domain

// Pagination agrupa os metadados de paginação devolvidos junto com a página
// de produtos. Os nomes em camelCase seguem o contrato público da API.
type Pagination struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// NewPagination deriva os metadados a partir da contagem total, página e
// limite. Função pura e determinística.
//
// Invariantes:
//   - totalPages = ceil(total/limit), com totalPages = 0 quando total = 0
//   - hasNextPage <=> page < totalPages
//   - hasPrevPage <=> page > 1
//   - page/limit <= 0 são clampados para 1, então o offset nunca é negativo
func NewPagination(total, page, limit int) Pagination {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 1
	}
	if total < 0 {
		total = 0
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return Pagination{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

// Offset retorna quantas linhas pular para chegar nesta página.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}
