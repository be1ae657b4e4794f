package request

import "fmt"

type VerifyRequest struct {
	InputText    string `json:"input_text"`
	ResponseText string `json:"response_text"`
}

func (r *VerifyRequest) Validate() error {
	if r.ResponseText == "" {
		return fmt.Errorf("response_text is required")
	}
	return nil
}

type ChatRequest struct {
	Message string `json:"message"`
}

func (r *ChatRequest) Validate() error {
	if r.Message == "" {
		return fmt.Errorf("message is required")
	}
	return nil
}
