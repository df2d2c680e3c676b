package model

// Produto represents a product row in the catalogue.
type Produto struct {
	ID        int64  `json:"id"`
	Descricao string `json:"descricao"`
	Rating    int    `json:"rating"`
}

// CreateProdutoRequest is the payload accepted by POST /produtos.
// Validation tags are enforced before any database access.
type CreateProdutoRequest struct {
	Descricao string `json:"descricao" validate:"required"`
	Rating    int    `json:"rating" validate:"gte=1,lte=5"`
}

// UpdateProdutoRequest is the payload accepted by PUT /produtos/{id}.
// Every field is a full replacement value; partial updates are not supported.
// Update payloads are intentionally not validated beyond JSON well-formedness.
type UpdateProdutoRequest struct {
	Descricao string `json:"descricao"`
	Rating    int    `json:"rating"`
}

// CreateProdutoResponse wraps the stored row with a success message.
type CreateProdutoResponse struct {
	Message string  `json:"message"`
	Produto Produto `json:"produto"`
}

// HealthResponse is returned by the root health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
