package utils

const (
	// IdKey is the key for post and event IDs used in routing parameters.
	IdKey = "id"

	// ItemIdKey is the key for bookmarked item IDs used in routing parameters.
	ItemIdKey = "itemId"

	// TokenKey is the key for the verification token used in routing parameters.
	TokenKey = "token"

	// PageParamKey is the key for page used in pagination query parameters.
	PageParamKey = "page"

	// LimitParamKey is the key for limit used in pagination query parameters.
	LimitParamKey = "limit"

	// TypeParamKey is the key for the post content type filter used in query parameters.
	TypeParamKey = "type"
)
