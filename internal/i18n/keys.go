package i18n

// Key identifies a user-facing message.
type Key string

// Entity names used to build per-entity keys.
const (
	EntityAnimal  = "animal"
	EntitySection = "section"
	EntityEvent   = "event"
	EntityComment = "comment"
	EntityUser    = "user"
)

// Error messages.
const (
	ErrInternal         Key = "error.internal"
	ErrBadRequest       Key = "error.bad_request"
	ErrInvalidID        Key = "error.invalid_id"
	ErrValidation       Key = "error.validation"
	ErrTokenMissing     Key = "error.token.missing"
	ErrTokenInvalid     Key = "error.token.invalid"
	ErrTokenExpired     Key = "error.token.expired"
	ErrForbidden        Key = "error.forbidden"
	ErrCredentials      Key = "error.credentials"
	ErrEmailExists      Key = "error.email_exists"
	ErrCommentLimit     Key = "error.comment.limit"
	ErrInvalidReference Key = "error.invalid_reference"
	ErrDuplicate        Key = "error.duplicate"
	ErrNotFound         Key = "error.not_found"
	ErrPhotoSize        Key = "error.photo.size"
	ErrPhotoFormat      Key = "error.photo.format"
	ErrPhotoMissing     Key = "error.photo.missing"
)

// Confirmation messages.
const (
	MsgPasswordUpdated Key = "message.user.password_updated"
	MsgNameUpdated     Key = "message.user.name_updated"
	MsgEmailUpdated    Key = "message.user.email_updated"
	MsgRoleUpdated     Key = "message.user.role_updated"
	MsgPhotoUpdated    Key = "message.photo_updated"
)

// NotFound returns the not-found message key for entity.
func NotFound(entity string) Key {
	return ErrNotFound + Key("."+entity)
}

// NameExists returns the duplicate-name message key for entity.
func NameExists(entity string) Key {
	return Key("error.name_exists." + entity)
}

// Deleted returns the delete confirmation key for entity.
func Deleted(entity string) Key {
	return Key("message.deleted." + entity)
}

// Updated returns the update confirmation key for entity.
func Updated(entity string) Key {
	return Key("message.updated." + entity)
}

func fieldKey(field string) Key {
	return Key("field." + field)
}

func ruleKey(rule string) Key {
	return Key("rule." + rule)
}
