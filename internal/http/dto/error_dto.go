package dto

import "focuspad/internal/domain"

// ErrorResponse carries either a message string or a list of ValidationDetail.
type ErrorResponse struct {
	Detail any `json:"detail"`
}

type ValidationDetail struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

func NewValidationResponse(verr *domain.ValidationError) ErrorResponse {
	details := make([]ValidationDetail, 0, len(verr.Errors))
	for _, fe := range verr.Errors {
		details = append(details, ValidationDetail{Loc: fe.Loc, Msg: fe.Msg, Type: fe.Type})
	}
	return ErrorResponse{Detail: details}
}
