package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"goshop/internal/domain"
	apperror "goshop/internal/errors"
	"goshop/internal/pkg/logger"
	"goshop/internal/pkg/middleware"
)

// CatalogAdminService define o contrato de escrita que o Handler espera.
type CatalogAdminService interface {
	UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (domain.ProductDetailView, error)
}

// Handler agrupa os métodos administrativos do catálogo. As rotas deste
// pacote ficam atrás do AuthMiddleware + PermissionMiddleware(RoleAdmin).
type Handler struct {
	Service CatalogAdminService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc CatalogAdminService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// handleServiceResponse padroniza o tratamento de erros e respostas HTTP.
func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	if err == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(successStatus)
		if data != nil {
			json.NewEncoder(w).Encode(data)
		}
		return
	}

	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		h.Logger.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	}

	errorResponse := map[string]interface{}{
		"code":     status,
		"category": category,
		"message":  message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse)
}

// UpdateProductHandler lida com a requisição PATCH /v1/admin/products/{id}.
// @Summary Atualiza parcialmente um produto (admin)
// @Description Aplica um patch tipado; campos ausentes não são alterados e chaves desconhecidas são rejeitadas.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do produto"
// @Param patch body domain.ProductPatch true "Campos a atualizar"
// @Success 200 {object} domain.ProductDetailView "Produto atualizado"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido ou patch vazio"
// @Failure 401 {object} domain.ErrorResponse "Token ausente ou inválido"
// @Failure 403 {object} domain.ErrorResponse "Permissão insuficiente"
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /admin/products/{id} [patch]
func (h *Handler) UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	// O ID é o último segmento: ["v1", "admin", "products", "{id}"]
	segments := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(segments) != 4 || segments[3] == "" {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Formato de URL inválido ou ID ausente."), http.StatusOK)
		return
	}
	productID := segments[3]

	// Chaves desconhecidas no payload são erro, não silêncio.
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	var patch domain.ProductPatch
	if err := decoder.Decode(&patch); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload JSON inválido ou com campos desconhecidos."), http.StatusOK)
		return
	}

	if claims, ok := middleware.GetUserClaimsFromContext(r.Context()); ok {
		h.Logger.Info("Patch administrativo de produto.", map[string]interface{}{
			"user_id":    claims.UserID,
			"product_id": productID,
		})
	}

	view, err := h.Service.UpdateProduct(r.Context(), productID, patch)
	h.handleServiceResponse(w, r, view, err, http.StatusOK)
}
