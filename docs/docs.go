// Package docs registra a especificação OpenAPI servida pelo Swagger UI em
// /swagger/. O template acompanha as anotações dos handlers.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Lista produtos com filtros, ordenação e paginação",
                "parameters": [
                    {"type": "string", "name": "category", "in": "query", "description": "Slug da categoria"},
                    {"type": "string", "name": "brand", "in": "query", "description": "Slug da marca"},
                    {"type": "number", "name": "minPrice", "in": "query", "description": "Preço mínimo (inclusivo)"},
                    {"type": "number", "name": "maxPrice", "in": "query", "description": "Preço máximo (inclusivo)"},
                    {"type": "string", "name": "search", "in": "query", "description": "Busca por substring em nome e descrições"},
                    {"type": "boolean", "name": "featured", "in": "query", "description": "Somente destaques"},
                    {"type": "string", "name": "sortBy", "in": "query", "description": "price_asc | price_desc | newest | popularity"},
                    {"type": "integer", "name": "page", "in": "query", "description": "Página (padrão 1)"},
                    {"type": "integer", "name": "limit", "in": "query", "description": "Itens por página (padrão 12, máximo 100)"}
                ],
                "responses": {
                    "200": {"description": "Página de produtos com metadados de paginação"},
                    "500": {"description": "Erro interno do servidor"}
                }
            }
        },
        "/products/featured": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Lista os produtos em destaque",
                "parameters": [
                    {"type": "integer", "name": "limit", "in": "query", "description": "Quantidade (padrão 8)"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "Erro interno do servidor"}
                }
            }
        },
        "/products/new": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Lista os produtos mais recentes",
                "parameters": [
                    {"type": "integer", "name": "limit", "in": "query", "description": "Quantidade (padrão 8)"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "Erro interno do servidor"}
                }
            }
        },
        "/products/{slug}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Busca a página completa de um produto ativo pelo slug",
                "parameters": [
                    {"type": "string", "name": "slug", "in": "path", "required": true, "description": "Slug do produto"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Produto não encontrado"},
                    "500": {"description": "Erro interno do servidor"}
                }
            }
        },
        "/products/{slug}/related": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Lista produtos que compartilham categoria com o produto",
                "parameters": [
                    {"type": "string", "name": "slug", "in": "path", "required": true, "description": "Slug do produto"},
                    {"type": "integer", "name": "limit", "in": "query", "description": "Quantidade (padrão 4)"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Produto não encontrado"},
                    "500": {"description": "Erro interno do servidor"}
                }
            }
        },
        "/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Lista as categorias ativas na ordem de exibição",
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "Erro interno do servidor"}
                }
            }
        },
        "/categories/{slug}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Busca uma categoria ativa pelo slug",
                "parameters": [
                    {"type": "string", "name": "slug", "in": "path", "required": true, "description": "Slug da categoria"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Categoria não encontrada"},
                    "500": {"description": "Erro interno do servidor"}
                }
            }
        },
        "/brands": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Lista todas as marcas em ordem alfabética",
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "Erro interno do servidor"}
                }
            }
        },
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Registra um novo usuário",
                "responses": {
                    "201": {"description": "Usuário criado com sucesso"},
                    "400": {"description": "Payload inválido"},
                    "409": {"description": "Email já cadastrado"},
                    "500": {"description": "Erro interno do servidor"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Autentica um usuário e retorna um JWT",
                "responses": {
                    "200": {"description": "Token JWT emitido"},
                    "400": {"description": "Payload inválido"},
                    "401": {"description": "Credenciais inválidas"},
                    "500": {"description": "Erro interno do servidor"}
                }
            }
        },
        "/auth/me": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Retorna o perfil do usuário autenticado",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Token ausente ou inválido"},
                    "500": {"description": "Erro interno do servidor"}
                }
            }
        },
        "/admin/products/{id}": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Atualiza parcialmente um produto (admin)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true, "description": "ID do produto"}
                ],
                "responses": {
                    "200": {"description": "Produto atualizado"},
                    "400": {"description": "Payload inválido ou patch vazio"},
                    "401": {"description": "Token ausente ou inválido"},
                    "403": {"description": "Permissão insuficiente"},
                    "404": {"description": "Produto não encontrado"},
                    "500": {"description": "Erro interno do servidor"}
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo mantém as informações exportadas da API.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "GoShop Catalog API",
	Description:      "API de catálogo da loja: listagem com filtros/ordenação/paginação, páginas de produto, categorias, marcas, contas e administração.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
