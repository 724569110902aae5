package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"mindcare/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Upstream capacity conditions the symptom checker maps to dedicated copy.
var (
	ErrRateLimited = errors.New("ai rate limited")
	ErrUnavailable = errors.New("ai service unavailable")
)

const advicePrompt = `You are a compassionate mental-wellness assistant. The user will describe
symptoms, thoughts, or feelings. Offer gentle, supportive guidance and simple
coping suggestions. Always remind the user that this is general guidance only
and that a licensed mental health professional should be consulted for
diagnosis and treatment. If the user mentions self-harm, urge them to contact
a crisis line immediately.`

type AdviceService struct {
	db      *gorm.DB
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

func NewAdviceService(db *gorm.DB, baseURL, apiKey, model string) *AdviceService {
	return &AdviceService{db: db, baseURL: baseURL, apiKey: apiKey, model: model, client: &http.Client{}}
}

// Check forwards the symptoms to the AI upstream and records the exchange.
// Nothing is written when the upstream call fails.
func (s *AdviceService) Check(ctx context.Context, userID, symptoms string) (string, error) {
	symptoms = strings.TrimSpace(symptoms)
	if symptoms == "" {
		return "", fmt.Errorf("%w: please describe your symptoms", ErrValidation)
	}

	reply, err := s.chat(ctx, advicePrompt, symptoms)
	if err != nil {
		return "", err
	}

	check := model.SymptomCheck{
		ID:         uuid.NewString(),
		UserID:     userID,
		Symptoms:   symptoms,
		AIResponse: reply,
	}
	if err := s.db.WithContext(ctx).Create(&check).Error; err != nil {
		return "", fmt.Errorf("insert symptom check: %w", err)
	}
	return reply, nil
}

func (s *AdviceService) chat(ctx context.Context, system, user string) (string, error) {
	body := map[string]interface{}{
		"model": s.model,
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": user},
		},
	}
	payload, _ := json.Marshal(body)

	req, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+"/v1/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("llm call: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return "", ErrRateLimited
	case http.StatusPaymentRequired:
		return "", ErrUnavailable
	default:
		data, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("llm status %d: %s", resp.StatusCode, data)
	}

	data, _ := io.ReadAll(resp.Body)
	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("empty choices")
	}
	return result.Choices[0].Message.Content, nil
}
