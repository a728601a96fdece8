package errors

const errorPrefix = "ZDB-"

var (
	// Client error codes

	BAD_REQUEST = ErrorMessage{
		Code:    errorPrefix + "11001",
		Message: "Invalid body format.",
	}

	VALIDATION_FAILED = ErrorMessage{
		Code:    errorPrefix + "11002",
		Message: "Validation failed.",
	}

	UN_AUTHORIZED = ErrorMessage{
		Code:        errorPrefix + "11003",
		Message:     "Unauthorized",
		Description: "Authorization information was invalid or missing from your request.",
	}

	INVALID_TOKEN = ErrorMessage{
		Code:        errorPrefix + "11004",
		Message:     "Invalid or expired token.",
		Description: "The provided ID token could not be verified.",
	}

	NO_TOKEN = ErrorMessage{
		Code:        errorPrefix + "11005",
		Message:     "No token provided or token format is incorrect.",
		Description: "Expected an Authorization header of the form 'Bearer <token>'.",
	}

	FORBIDDEN = ErrorMessage{
		Code:        errorPrefix + "11006",
		Message:     "Access denied. Admin role required.",
		Description: "You do not have permission to access this resource.",
	}

	PROFILE_NOT_FOUND = ErrorMessage{
		Code:        errorPrefix + "11007",
		Message:     "User profile not found.",
		Description: "No user profile record found for the given id.",
	}

	PRODUCT_NOT_FOUND = ErrorMessage{
		Code:        errorPrefix + "11008",
		Message:     "Product not found.",
		Description: "No product record found for the given id.",
	}

	RESTAURANT_INFO_NOT_FOUND = ErrorMessage{
		Code:        errorPrefix + "11009",
		Message:     "Restaurant info not configured.",
		Description: "The restaurant settings document has not been created yet.",
	}

	PRODUCT_UNAVAILABLE = ErrorMessage{
		Code:    errorPrefix + "11010",
		Message: "Product is not available.",
	}

	INVALID_QUANTITY = ErrorMessage{
		Code:    errorPrefix + "11011",
		Message: "Quantity must be at least 1.",
	}

	ID_TOKEN_REQUIRED = ErrorMessage{
		Code:    errorPrefix + "11012",
		Message: "idToken is required.",
	}

	// Server error codes

	VERIFY_TOKEN = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Error while verifying the ID token.",
	}

	GET_IDENTITY = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Error while fetching the identity record.",
	}

	GET_PROFILE = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Error while fetching user profile.",
	}

	ADD_PROFILE = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error while creating user profile.",
	}

	UPDATE_PROFILE = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Error while updating user profile.",
	}

	DELETE_PROFILE = ErrorMessage{
		Code:    errorPrefix + "15006",
		Message: "Error while deleting user profile.",
	}

	LIST_USERS = ErrorMessage{
		Code:    errorPrefix + "15007",
		Message: "Error while listing users.",
	}

	UPDATE_IDENTITY = ErrorMessage{
		Code:    errorPrefix + "15008",
		Message: "Error while updating the identity record.",
	}

	SET_ROLE_CLAIM = ErrorMessage{
		Code:    errorPrefix + "15009",
		Message: "Error while setting the role custom claim.",
	}

	DELETE_IDENTITY = ErrorMessage{
		Code:    errorPrefix + "15010",
		Message: "Error while deleting the identity record.",
	}

	ADD_PRODUCT = ErrorMessage{
		Code:    errorPrefix + "15011",
		Message: "Error while creating product.",
	}

	GET_PRODUCT = ErrorMessage{
		Code:    errorPrefix + "15012",
		Message: "Error while fetching product(s).",
	}

	UPDATE_PRODUCT = ErrorMessage{
		Code:    errorPrefix + "15013",
		Message: "Error while updating product.",
	}

	DELETE_PRODUCT = ErrorMessage{
		Code:    errorPrefix + "15014",
		Message: "Error while deleting product.",
	}

	GET_RESTAURANT_INFO = ErrorMessage{
		Code:    errorPrefix + "15015",
		Message: "Error while fetching restaurant info.",
	}

	UPDATE_RESTAURANT_INFO = ErrorMessage{
		Code:    errorPrefix + "15016",
		Message: "Error while updating restaurant info.",
	}

	GET_CART = ErrorMessage{
		Code:    errorPrefix + "15017",
		Message: "Error while fetching cart.",
	}

	SAVE_CART = ErrorMessage{
		Code:    errorPrefix + "15018",
		Message: "Error while saving cart.",
	}

	MARSHAL_JSON = ErrorMessage{
		Code:    errorPrefix + "15019",
		Message: "Error while marshalling JSON.",
	}

	UNMARSHAL_JSON = ErrorMessage{
		Code:    errorPrefix + "15020",
		Message: "Error while un-marshalling JSON.",
	}

	CLIENT_INIT = ErrorMessage{
		Code:    errorPrefix + "15021",
		Message: "Unable to initialize backing service client.",
	}
)
