package extraction

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"slotly-service/internal/app/config"
	"slotly-service/internal/app/contracts"
	"slotly-service/internal/app/models"
	"slotly-service/internal/pkg/constvars"
	"slotly-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// systemPromptFormat instructs the model to return the schedule JSON shape
// the parser understands. The injected date anchors relative mentions like
// "next week" or "as férias de dezembro".
const systemPromptFormat = `You are a medical scheduling assistant. Today is %s.

CRITICAL RULE: ONLY include what the user EXPLICITLY mentions. NEVER add anything they didn't ask for.

Your task: extract schedule information from the doctor's text and return a JSON structure.

Accept input in any language but ALWAYS output day names in English.

STRICT RULES:
1. BREAKS: only add breaks when the user explicitly mentions lunch, almoço, pause, break, intervalo or pausa. Otherwise breaks must be an empty array [].
2. SLOT DURATION: use what the user says; default to 30 minutes when not mentioned.
3. BLOCKED DATES: only when the user mentions vacation, block, holiday, férias, bloquear and similar.
4. OVERRIDES: only when the user gives DIFFERENT hours for specific days.

Output shape:
{
  "schedule": {
    "default": {"days": ["Monday", ...], "start_time": "09:00", "end_time": "17:00", "slot_duration_minutes": 30, "breaks": [{"start": "12:00", "end": "13:00"}]},
    "overrides": [{"day": "Saturday", "start_time": "08:00", "end_time": "12:00", "slot_duration_minutes": 20, "breaks": []}],
    "blocked_dates": ["2026-12-24"],
    "blocked_date_ranges": [{"start": "2026-12-20", "end": "2027-01-05", "reason": "vacation"}]
  }
}

Times in 24h HH:MM format, dates in YYYY-MM-DD format. Return ONLY valid JSON, nothing else.`

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatCompletionRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	ResponseFormat responseFormat `json:"response_format"`
	Temperature    float64        `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

var (
	extractionServiceInstance contracts.ScheduleExtractionService
	onceExtractionService     sync.Once
	extractionServiceError    error
)

type extractionService struct {
	BaseUrl string
	ApiKey  string
	Model   string
	Timeout time.Duration
	Log     *zap.Logger
	limiter *rate.Limiter
	cache   *lru.Cache[string, *models.ScheduleStructure]
}

func NewExtractionService(internalConfig *config.InternalConfig, logger *zap.Logger) (contracts.ScheduleExtractionService, error) {
	onceExtractionService.Do(func() {
		cache, err := lru.New[string, *models.ScheduleStructure](internalConfig.Extraction.CacheSize)
		if err != nil {
			extractionServiceError = err
			return
		}
		perMinute := internalConfig.Extraction.MaxRequestsPerMinute
		if perMinute <= 0 {
			perMinute = 1
		}
		instance := &extractionService{
			BaseUrl: strings.TrimRight(internalConfig.Extraction.BaseUrl, "/"),
			ApiKey:  internalConfig.Extraction.ApiKey,
			Model:   internalConfig.Extraction.Model,
			Timeout: time.Duration(internalConfig.Extraction.TimeoutInSeconds) * time.Second,
			Log:     logger,
			limiter: rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), perMinute),
			cache:   cache,
		}
		extractionServiceInstance = instance
	})
	return extractionServiceInstance, extractionServiceError
}

func (s *extractionService) ExtractSchedule(ctx context.Context, text string) (*models.ScheduleStructure, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("extractionService.ExtractSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	cacheKey := extractionCacheKey(text)
	if cached, ok := s.cache.Get(cacheKey); ok {
		s.Log.Info("extractionService.ExtractSchedule cache hit",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return cached, nil
	}

	if err := s.limiter.Wait(ctx); err != nil {
		s.Log.Error("extractionService.ExtractSchedule rate limiter rejected request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrExtractionUpstream(err)
	}

	content, err := s.requestCompletion(ctx, text)
	if err != nil {
		s.Log.Error("extractionService.ExtractSchedule completion request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	structure, err := parseScheduleContent(content)
	if err != nil {
		s.Log.Error("extractionService.ExtractSchedule unparsable model output",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrExtractionBadPayload(err)
	}

	s.cache.Add(cacheKey, structure)

	s.Log.Info("extractionService.ExtractSchedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return structure, nil
}

func (s *extractionService) requestCompletion(ctx context.Context, text string) (string, error) {
	payload := chatCompletionRequest{
		Model: s.Model,
		Messages: []chatMessage{
			{Role: "system", Content: fmt.Sprintf(systemPromptFormat, time.Now().Format("2006-01-02"))},
			{Role: "user", Content: text},
		},
		ResponseFormat: responseFormat{Type: "json_object"},
		Temperature:    0.1,
	}

	requestJSON, err := json.Marshal(payload)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, s.BaseUrl+"/chat/completions", bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+s.ApiKey)

	client := &http.Client{Timeout: s.Timeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", exceptions.ErrExtractionUpstream(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return "", exceptions.ErrExtractionUpstream(fmt.Errorf("completion endpoint returned status %d", resp.StatusCode))
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", exceptions.ErrExtractionBadPayload(err)
	}
	if len(completion.Choices) == 0 {
		return "", exceptions.ErrExtractionBadPayload(fmt.Errorf("completion returned no choices"))
	}

	return completion.Choices[0].Message.Content, nil
}

// extractionCacheKey hashes the trimmed lowercased text so trivially
// re-submitted descriptions reuse the previous extraction.
func extractionCacheKey(text string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(text))))
	return hex.EncodeToString(sum[:])
}
