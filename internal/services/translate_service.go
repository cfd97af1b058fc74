package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"work_exchange/configs"
	"work_exchange/internal/db/models"

	"go.uber.org/zap"
)

type translateService struct {
	client  *http.Client
	baseURL string
	logger  *zap.SugaredLogger
}

// TranslateService is best effort: a failed translation reports ok=false and never an error.
type TranslateService interface {
	Translate(ctx context.Context, text string, target models.Language) (string, bool)
}

func NewTranslateService(config configs.Translator, logger *zap.SugaredLogger) TranslateService {
	return &translateService{
		client:  &http.Client{Timeout: config.Timeout},
		baseURL: strings.TrimRight(config.URL, "/"),
		logger:  logger,
	}
}

func (s *translateService) Translate(ctx context.Context, text string, target models.Language) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}

	translated, err := s.translate(ctx, text, target)
	if err != nil {
		s.logger.Warnw("failed to translate text", "target", target, "error", err)
		return "", false
	}

	return translated, true
}

func (s *translateService) translate(ctx context.Context, text string, target models.Language) (string, error) {
	query := url.Values{}
	query.Set("client", "gtx")
	query.Set("sl", "auto")
	query.Set("tl", target.Tag().String())
	query.Set("dt", "t")
	query.Set("q", text)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/translate_a/single?%s", s.baseURL, query.Encode()), nil)
	if err != nil {
		return "", err
	}

	response, err := s.client.Do(request)
	if err != nil {
		return "", err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", response.StatusCode)
	}

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return "", err
	}

	return parseTranslation(responseBody)
}

// parseTranslation joins the translated segments of a translate_a/single response,
// which looks like [[["segment","source",...],...],null,"ru",...].
func parseTranslation(body []byte) (string, error) {
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", err
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("empty translation response")
	}

	var segments [][]interface{}
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return "", err
	}

	var builder strings.Builder
	for _, segment := range segments {
		if len(segment) == 0 {
			continue
		}
		if part, ok := segment[0].(string); ok {
			builder.WriteString(part)
		}
	}

	if builder.Len() == 0 {
		return "", fmt.Errorf("translation response has no text")
	}

	return builder.String(), nil
}
