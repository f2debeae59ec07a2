package catalogrepo

import (
	"fmt"
	"strings"

	"goshop/internal/domain"
)

// Este arquivo concentra a tradução do predicado/ordenação de domínio para
// SQL parametrizado. Os placeholders $n são numerados automaticamente a
// partir do slice de argumentos, evitando sincronização manual entre a
// cláusula e a posição do parâmetro.

// buildWhere converte o ProductPredicate em uma cláusula WHERE (com o prefixo
// " WHERE " incluído quando há cláusulas) e o slice de argumentos na ordem dos
// placeholders. A consulta principal usa o alias p (products) com JOIN em
// b (brands).
func buildWhere(pred domain.ProductPredicate) (string, []interface{}) {
	clauses := make([]string, 0, 6)
	args := make([]interface{}, 0, 6)

	if pred.ActiveOnly {
		clauses = append(clauses, "p.is_active = TRUE")
	}

	if pred.CategorySlug != "" {
		args = append(args, pred.CategorySlug)
		clauses = append(clauses, fmt.Sprintf(
			`EXISTS (SELECT 1 FROM product_categories pc JOIN categories c ON c.id = pc.category_id WHERE pc.product_id = p.id AND c.slug = $%d)`,
			len(args)))
	}

	if pred.BrandSlug != "" {
		args = append(args, pred.BrandSlug)
		clauses = append(clauses, fmt.Sprintf("b.slug = $%d", len(args)))
	}

	// Faixa de preço inclusiva; cada extremo é independente.
	if pred.MinPrice != nil {
		args = append(args, pred.MinPrice.String())
		clauses = append(clauses, fmt.Sprintf("p.price >= $%d", len(args)))
	}
	if pred.MaxPrice != nil {
		args = append(args, pred.MaxPrice.String())
		clauses = append(clauses, fmt.Sprintf("p.price <= $%d", len(args)))
	}

	if pred.Featured != nil {
		args = append(args, *pred.Featured)
		clauses = append(clauses, fmt.Sprintf("p.is_featured = $%d", len(args)))
	}

	// Busca por substring case-insensitive: OR entre nome e descrições,
	// reutilizando o mesmo placeholder nas três comparações.
	if pred.Search != "" {
		args = append(args, "%"+pred.Search+"%")
		n := len(args)
		clauses = append(clauses, fmt.Sprintf(
			"(p.name ILIKE $%d OR p.description_short ILIKE $%d OR p.description_long ILIKE $%d)",
			n, n, n))
	}

	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// buildOrder converte o ProductOrder na cláusula ORDER BY correspondente.
// Popularidade ordena pela contagem de order_items; o desempate fica com a
// ordem nativa do PostgreSQL (implementation-defined).
func buildOrder(order domain.ProductOrder) string {
	switch order {
	case domain.OrderPriceAsc:
		return " ORDER BY p.price ASC"
	case domain.OrderPriceDesc:
		return " ORDER BY p.price DESC"
	case domain.OrderPopularity:
		return " ORDER BY (SELECT COUNT(*) FROM order_items oi WHERE oi.product_id = p.id) DESC"
	default:
		return " ORDER BY p.created_at DESC"
	}
}
