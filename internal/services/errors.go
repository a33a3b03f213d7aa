package services

import (
	"errors"

	goa "goa.design/goa/v3/pkg"

	"billiton/gen/assetowner"
	"billiton/gen/auth"
	"billiton/gen/consultation"
	"billiton/gen/investor"
)

// AuthUnauthorized creates a properly formatted unauthorized error for the auth service
func AuthUnauthorized(message string) *goa.ServiceError {
	return auth.MakeUnauthorized(errors.New(message))
}

// ConsultationUnauthorized creates a properly formatted unauthorized error for the consultation service
func ConsultationUnauthorized(message string) *goa.ServiceError {
	return consultation.MakeUnauthorized(errors.New(message))
}

// AssetOwnerUnauthorized creates a properly formatted unauthorized error for the assetowner service
func AssetOwnerUnauthorized(message string) *goa.ServiceError {
	return assetowner.MakeUnauthorized(errors.New(message))
}

// InvestorUnauthorized creates a properly formatted unauthorized error for the investor service
func InvestorUnauthorized(message string) *goa.ServiceError {
	return investor.MakeUnauthorized(errors.New(message))
}
