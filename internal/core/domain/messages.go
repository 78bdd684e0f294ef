package domain

// Client-facing messages. Several are prefixes completed with an id.
const (
	ProductNotFound          = "Product not found :: "
	ProductsNotFound         = "Products not found"
	ErrorCreatingProduct     = "Error creating product"
	LocationNotFound         = "Location not found :: "
	LocationsNotFound        = "Locations not found"
	ProductInLocationMissing = "No location holds product :: "
	ProductAlreadyRegistered = "This Product is already registered "
	LocationAlreadyHolds     = "This location already holds a product :: "
	RequiredParameter        = "Required parameter '"
	IsNullOrBlank            = "' is null or blank!"
	InvalidParameter         = "Invalid parameter '"
	InvalidCredentials       = "Invalid username/password supplied!"
	InvalidToken             = "Invalid or expired token"
	MissingToken             = "Missing bearer token"
)

// Wire names of the product request fields.
const (
	FieldName  = "nome"
	FieldPrice = "preco"
)

// Wire names of the credential fields.
const (
	FieldUsername = "username"
	FieldPassword = "password"
)
