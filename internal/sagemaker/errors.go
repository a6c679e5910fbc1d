package sagemaker

import (
	"errors"

	"github.com/cloudshim/awslite/internal/awsjson"
)

// SageMaker's modeled error codes carry no "Exception" suffix for the
// resource errors; match the wire strings exactly.

type ResourceNotFound struct{ *awsjson.APIError }

func (e *ResourceNotFound) Unwrap() error { return e.APIError }

type ResourceInUse struct{ *awsjson.APIError }

func (e *ResourceInUse) Unwrap() error { return e.APIError }

type ResourceLimitExceeded struct{ *awsjson.APIError }

func (e *ResourceLimitExceeded) Unwrap() error { return e.APIError }

type ConflictException struct{ *awsjson.APIError }

func (e *ConflictException) Unwrap() error { return e.APIError }

func convertError(err error) error {
	var ae *awsjson.APIError
	if !errors.As(err, &ae) {
		return err
	}
	switch ae.Code {
	case "ResourceNotFound":
		return &ResourceNotFound{ae}
	case "ResourceInUse":
		return &ResourceInUse{ae}
	case "ResourceLimitExceeded":
		return &ResourceLimitExceeded{ae}
	case "ConflictException":
		return &ConflictException{ae}
	}
	return err
}
