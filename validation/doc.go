// Package validation turns request validation failures into errkit
// validation errors.
//
// Failures come from three places: gin request binding (struct tags under
// `binding:"..."`), explicit struct validation (tags under `validate:"..."`)
// and programmatic checks. All three produce errors.RawFailure values that
// are normalized into a single ValidationError, so clients see one response
// shape whichever path rejected the request.
//
// # Request Binding
//
//	type GetUserParams struct {
//	    ID string `uri:"id" binding:"required,uuid"`
//	}
//
//	var params GetUserParams
//	if err := validation.BindURI(c, &params); err != nil {
//	    return err // 400 FST_ERR_VALIDATION, validationContext "params"
//	}
//
// # Programmatic Validation
//
//	v := validation.New(validation.ContextBody)
//	v.Required("name", cmd.Name).MaxLength("name", cmd.Name, 64)
//	if err := v.Validate(); err != nil {
//	    return err
//	}
package validation
