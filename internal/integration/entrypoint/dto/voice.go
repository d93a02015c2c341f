// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/wealthflow/backend/internal/application/usecase/voice"
)

// VoiceEntryRequest represents the request body for a voice entry.
type VoiceEntryRequest struct {
	Text    string `json:"text" binding:"required"`
	Confirm bool   `json:"confirm"`
}

// VoiceDraftResponse represents the transaction a voice entry was mapped to.
type VoiceDraftResponse struct {
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Merchant    string `json:"merchant"`
}

// VoiceEntryResponse represents the response for a voice entry.
type VoiceEntryResponse struct {
	Draft   VoiceDraftResponse         `json:"draft"`
	Applied *CreateTransactionResponse `json:"applied,omitempty"`
}

// ToVoiceEntryResponse converts a ProcessVoiceEntryOutput to a response DTO.
func ToVoiceEntryResponse(output *voice.ProcessVoiceEntryOutput) VoiceEntryResponse {
	response := VoiceEntryResponse{
		Draft: VoiceDraftResponse{
			AccountID:   output.Draft.AccountID,
			AccountName: output.Draft.AccountName,
			Amount:      output.Draft.Amount.String(),
			Currency:    string(output.Draft.Currency),
			Type:        string(output.Draft.Type),
			Category:    output.Draft.Category,
			Merchant:    output.Draft.Merchant,
		},
	}
	if output.Applied != nil {
		applied := ToCreateTransactionResponse(output.Applied)
		response.Applied = &applied
	}
	return response
}
