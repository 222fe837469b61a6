package i18n

// Messages are registered per base language; regional variants resolve to them.
var spanish = map[Key]string{
	ErrInternal:         "Se ha producido un error interno",
	ErrBadRequest:       "La petición no es válida",
	ErrInvalidID:        "El identificador no es válido",
	ErrValidation:       "Los datos enviados no son válidos",
	ErrTokenMissing:     "Es necesario iniciar sesión",
	ErrTokenInvalid:     "El token no es válido",
	ErrTokenExpired:     "El token ha expirado",
	ErrForbidden:        "No tienes permiso para realizar esta acción",
	ErrCredentials:      "Email o contraseña incorrectos",
	ErrEmailExists:      "Ya existe un usuario con ese email",
	ErrCommentLimit:     "Solo puedes comentar un animal una vez al día",
	ErrInvalidReference: "El registro relacionado no existe o sigue en uso",
	ErrDuplicate:        "El registro ya existe",
	ErrNotFound:         "No se ha encontrado el registro",
	ErrPhotoSize:        "La imagen no puede superar los %d MB",
	ErrPhotoFormat:      "La imagen debe ser .jpg, .jpeg o .png",
	ErrPhotoMissing:     "No se ha enviado ninguna imagen",

	NotFound(EntityAnimal):  "No se ha encontrado el animal",
	NotFound(EntitySection): "No se ha encontrado la sección",
	NotFound(EntityEvent):   "No se ha encontrado el evento",
	NotFound(EntityComment): "No se ha encontrado el comentario",
	NotFound(EntityUser):    "No se ha encontrado el usuario",

	NameExists(EntityAnimal):  "Ya existe un animal con ese nombre",
	NameExists(EntitySection): "Ya existe una sección con ese nombre",
	NameExists(EntityEvent):   "Ya existe un evento con ese nombre",
	NameExists(EntityUser):    "Ya existe un usuario con ese nombre",

	Deleted(EntityAnimal):  "Animal borrado correctamente",
	Deleted(EntitySection): "Sección borrada correctamente",
	Deleted(EntityEvent):   "Evento borrado correctamente",
	Deleted(EntityComment): "Comentario borrado correctamente",
	Deleted(EntityUser):    "Usuario borrado correctamente",

	Updated(EntityAnimal):  "Animal modificado correctamente",
	Updated(EntitySection): "Sección actualizada correctamente",
	Updated(EntityEvent):   "Evento actualizado correctamente",
	Updated(EntityUser):    "Usuario actualizado correctamente",

	MsgPasswordUpdated: "Contraseña actualizada correctamente",
	MsgNameUpdated:     "Nombre actualizado correctamente",
	MsgEmailUpdated:    "Email actualizado correctamente",
	MsgRoleUpdated:     "Rol actualizado correctamente",
	MsgPhotoUpdated:    "Imagen actualizada correctamente",

	fieldKey("id"):          "identificador",
	fieldKey("name"):        "nombre",
	fieldKey("species"):     "especie",
	fieldKey("birth_date"):  "fecha de nacimiento",
	fieldKey("section_id"):  "sección",
	fieldKey("description"): "descripción",
	fieldKey("date"):        "fecha",
	fieldKey("capacity"):    "plazas",
	fieldKey("animal_id"):   "animal",
	fieldKey("user_id"):     "usuario",
	fieldKey("text"):        "comentario",
	fieldKey("email"):       "email",
	fieldKey("password"):    "contraseña",
	fieldKey("role"):        "rol",

	ruleKey("required"):        "El campo %s es obligatorio",
	ruleKey("min"):             "El campo %s debe tener al menos %s caracteres",
	ruleKey("min_value"):       "El campo %s debe ser como mínimo %s",
	ruleKey("max_value"):       "El campo %s debe ser como máximo %s",
	ruleKey("past_or_present"): "El campo %s no puede ser una fecha futura",
	ruleKey("future"):          "El campo %s debe ser una fecha futura",
	ruleKey("email"):           "El campo %s no tiene un formato válido",
	ruleKey("oneof"):           "El campo %s debe ser uno de: %s",
	ruleKey("invalid"):         "El campo %s no es válido",
}

var english = map[Key]string{
	ErrInternal:         "An internal error occurred",
	ErrBadRequest:       "The request is not valid",
	ErrInvalidID:        "The identifier is not valid",
	ErrValidation:       "The submitted data is not valid",
	ErrTokenMissing:     "You need to log in",
	ErrTokenInvalid:     "The token is not valid",
	ErrTokenExpired:     "The token has expired",
	ErrForbidden:        "You are not allowed to perform this action",
	ErrCredentials:      "Wrong email or password",
	ErrEmailExists:      "A user with that email already exists",
	ErrCommentLimit:     "You can only comment on an animal once a day",
	ErrInvalidReference: "The related record does not exist or is still in use",
	ErrDuplicate:        "The record already exists",
	ErrNotFound:         "The record was not found",
	ErrPhotoSize:        "The image cannot exceed %d MB",
	ErrPhotoFormat:      "The image must be .jpg, .jpeg or .png",
	ErrPhotoMissing:     "No image was sent",

	NotFound(EntityAnimal):  "Animal not found",
	NotFound(EntitySection): "Section not found",
	NotFound(EntityEvent):   "Event not found",
	NotFound(EntityComment): "Comment not found",
	NotFound(EntityUser):    "User not found",

	NameExists(EntityAnimal):  "An animal with that name already exists",
	NameExists(EntitySection): "A section with that name already exists",
	NameExists(EntityEvent):   "An event with that name already exists",
	NameExists(EntityUser):    "A user with that name already exists",

	Deleted(EntityAnimal):  "Animal deleted",
	Deleted(EntitySection): "Section deleted",
	Deleted(EntityEvent):   "Event deleted",
	Deleted(EntityComment): "Comment deleted",
	Deleted(EntityUser):    "User deleted",

	Updated(EntityAnimal):  "Animal updated",
	Updated(EntitySection): "Section updated",
	Updated(EntityEvent):   "Event updated",
	Updated(EntityUser):    "User updated",

	MsgPasswordUpdated: "Password updated",
	MsgNameUpdated:     "Name updated",
	MsgEmailUpdated:    "Email updated",
	MsgRoleUpdated:     "Role updated",
	MsgPhotoUpdated:    "Image updated",

	fieldKey("id"):          "id",
	fieldKey("name"):        "name",
	fieldKey("species"):     "species",
	fieldKey("birth_date"):  "birth date",
	fieldKey("section_id"):  "section",
	fieldKey("description"): "description",
	fieldKey("date"):        "date",
	fieldKey("capacity"):    "capacity",
	fieldKey("animal_id"):   "animal",
	fieldKey("user_id"):     "user",
	fieldKey("text"):        "comment",
	fieldKey("email"):       "email",
	fieldKey("password"):    "password",
	fieldKey("role"):        "role",

	ruleKey("required"):        "The %s field is required",
	ruleKey("min"):             "The %s field must be at least %s characters long",
	ruleKey("min_value"):       "The %s field must be at least %s",
	ruleKey("max_value"):       "The %s field must be at most %s",
	ruleKey("past_or_present"): "The %s field cannot be in the future",
	ruleKey("future"):          "The %s field must be in the future",
	ruleKey("email"):           "The %s field is not a valid address",
	ruleKey("oneof"):           "The %s field must be one of: %s",
	ruleKey("invalid"):         "The %s field is not valid",
}
