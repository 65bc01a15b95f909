package api

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// BindingError describes a failed ShouldBindJSON call without echoing the request body.
// Validation failures list the offending fields, e.g. "invalid request: Items[0].Quantity (gt)".
func BindingError(err error) ErrorResponse {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return ErrorResponse{Error: "invalid request"}
	}
	fields := make([]string, 0, len(ve))
	for _, fe := range ve {
		ns := fe.Namespace()
		if i := strings.IndexByte(ns, '.'); i >= 0 {
			ns = ns[i+1:]
		}
		fields = append(fields, ns+" ("+fe.Tag()+")")
	}
	return ErrorResponse{Error: "invalid request: " + strings.Join(fields, ", ")}
}
