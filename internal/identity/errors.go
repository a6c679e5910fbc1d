package identity

import (
	"errors"

	"github.com/cloudshim/awslite/internal/awsjson"
)

// Typed service errors, one per wire error code the service models. Each
// wraps the decoded *awsjson.APIError so errors.As works at either level.

type ResourceNotFoundException struct{ *awsjson.APIError }

func (e *ResourceNotFoundException) Unwrap() error { return e.APIError }

type InvalidParameterException struct{ *awsjson.APIError }

func (e *InvalidParameterException) Unwrap() error { return e.APIError }

type NotAuthorizedException struct{ *awsjson.APIError }

func (e *NotAuthorizedException) Unwrap() error { return e.APIError }

type ResourceConflictException struct{ *awsjson.APIError }

func (e *ResourceConflictException) Unwrap() error { return e.APIError }

type TooManyRequestsException struct{ *awsjson.APIError }

func (e *TooManyRequestsException) Unwrap() error { return e.APIError }

type LimitExceededException struct{ *awsjson.APIError }

func (e *LimitExceededException) Unwrap() error { return e.APIError }

type InternalErrorException struct{ *awsjson.APIError }

func (e *InternalErrorException) Unwrap() error { return e.APIError }

type InvalidIdentityPoolConfigurationException struct{ *awsjson.APIError }

func (e *InvalidIdentityPoolConfigurationException) Unwrap() error { return e.APIError }

type ExternalServiceException struct{ *awsjson.APIError }

func (e *ExternalServiceException) Unwrap() error { return e.APIError }

// convertError promotes a decoded wire error to its typed form. Errors
// without a modeled code pass through unchanged.
func convertError(err error) error {
	var ae *awsjson.APIError
	if !errors.As(err, &ae) {
		return err
	}
	switch ae.Code {
	case "ResourceNotFoundException":
		return &ResourceNotFoundException{ae}
	case "InvalidParameterException":
		return &InvalidParameterException{ae}
	case "NotAuthorizedException":
		return &NotAuthorizedException{ae}
	case "ResourceConflictException":
		return &ResourceConflictException{ae}
	case "TooManyRequestsException":
		return &TooManyRequestsException{ae}
	case "LimitExceededException":
		return &LimitExceededException{ae}
	case "InternalErrorException":
		return &InternalErrorException{ae}
	case "InvalidIdentityPoolConfigurationException":
		return &InvalidIdentityPoolConfigurationException{ae}
	case "ExternalServiceException":
		return &ExternalServiceException{ae}
	}
	return err
}
