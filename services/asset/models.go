package assetservice

import (
	"assettracker/models"

	"github.com/google/uuid"
)

type CreateAssetReq struct {
	Title                 string   `json:"title" validate:"required"`
	Model                 string   `json:"model" validate:"required"`
	SerialNumber          string   `json:"serialNumber" validate:"required"`
	Description           string   `json:"description" validate:"required"`
	Status                *string  `json:"status"`
	Latitude              *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude             *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Image                 *string  `json:"image"`
	ImageURL              *string  `json:"imageUrl"`
	AssignedToClerkUserID *string  `json:"assignedToClerkUserId"`
}

// UpdateAssetReq fields left nil or unset keep their stored value. For the
// Nullable fields an explicit null clears the value.
type UpdateAssetReq struct {
	Title                 *string                  `json:"title"`
	Model                 *string                  `json:"model"`
	SerialNumber          *string                  `json:"serialNumber"`
	Description           *string                  `json:"description"`
	Status                *string                  `json:"status"`
	Latitude              models.Nullable[float64] `json:"latitude"`
	Longitude             models.Nullable[float64] `json:"longitude"`
	Image                 *string                  `json:"image"`
	ImageURL              models.Nullable[string]  `json:"imageUrl"`
	AssignedToClerkUserID models.Nullable[string]  `json:"assignedToClerkUserId"`
}

type AssetMutationResult struct {
	Asset       models.AssetDetails
	SideEffects []models.SideEffect
}

type DeleteAssetResult struct {
	AssetID     uuid.UUID
	SideEffects []models.SideEffect
}
