// Package gemini drafts customer-facing Turkish copy (quote emails, program
// highlight bullets) with the Gemini API.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"eduquote/internal/adapters/observability"
	"eduquote/internal/domain"
)

const defaultModel = "gemini-2.5-flash"

type Drafter struct {
	client  *genai.Client
	model   string
	limiter *rate.Limiter
}

// New builds a Drafter against the public Gemini API backend. rps bounds the
// outbound request rate; zero or negative means 1 req/s.
func New(ctx context.Context, apiKey, model string, rps float64) (*Drafter, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: client: %w", err)
	}
	if model == "" {
		model = defaultModel
	}
	if rps <= 0 {
		rps = 1
	}
	return &Drafter{
		client:  client,
		model:   model,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}, nil
}

func (d *Drafter) DraftEmail(ctx context.Context, p domain.Program, q domain.QuoteDetails) (string, error) {
	prompt := emailPrompt(p, q)

	text, err := d.generate(ctx, "draft_email", prompt, nil)
	if err != nil {
		return "", err
	}
	return text, nil
}

func (d *Drafter) Highlights(ctx context.Context, p domain.Program) ([]string, error) {
	prompt := highlightsPrompt(p)

	text, err := d.generate(ctx, "highlights", prompt, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return nil, err
	}
	var out []string
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, fmt.Errorf("gemini: highlights response: %w", err)
	}
	return out, nil
}

func (d *Drafter) generate(ctx context.Context, endpoint, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	if err := d.limiter.Wait(ctx); err != nil {
		return "", err
	}

	start := time.Now()
	resp, err := d.client.Models.GenerateContent(ctx, d.model, genai.Text(prompt), cfg)
	if err != nil {
		observability.ObserveExternal("gemini", endpoint, 500, time.Since(start))
		return "", fmt.Errorf("gemini: %s: %w", endpoint, err)
	}
	observability.ObserveExternal("gemini", endpoint, 200, time.Since(start))
	return strings.TrimSpace(resp.Text()), nil
}

func emailPrompt(p domain.Program, q domain.QuoteDetails) string {
	extraLeader := q.ExtraLeaderPrice
	if extraLeader == "" {
		extraLeader = "Belirtilmemiş"
	}
	return fmt.Sprintf(`Sen profesyonel bir yurtdışı eğitim danışmanısın.
Aşağıdaki bilgilere dayanarak acente ve danışman adına veliye veya kurumsal müşteriye gönderilmek üzere nazik, profesyonel ve ikna edici bir e-posta taslağı yaz (Türkçe).
E-posta, programın avantajlarını vurgulamalıdır.

Gönderen Bilgileri:
- Acente: %s
- İletişim: %s

Program Detayları:
- İsim: %s
- Konum: %s, %s, %s
- Yaş Aralığı: %s
- Konaklama: %s - %s

Teklif Detayları:
- Öğrenci Sayısı: %s
- Grup Lideri Sayısı: %s
- Süre: %s Hafta
- Öğrenci Başı Toplam Ücret: %s
- Ek Lider Ücreti: %s
- Notlar: %s

Lütfen sadece e-posta gövdesini oluştur, konu satırını da en başa ekle.`,
		q.AgencyName, q.ConsultantName,
		p.Name, p.Location, p.City, p.Country, p.AgeRange,
		p.AccommodationType, p.AccommodationDetails,
		q.StudentCount, q.GroupLeaderCount, q.DurationWeeks,
		q.PricePerStudent, extraLeader, q.Notes)
}

func highlightsPrompt(p domain.Program) string {
	return fmt.Sprintf(`Aşağıdaki yaz okulu programı için 3 adet kısa, vurucu "Öne Çıkan Özellik" (bullet point) oluştur.
Program: %s (%s, %s)
Açıklama: %s
Dahil Hizmetler: %s

Çıktı formatı JSON array olsun: ["Özellik 1", "Özellik 2", "Özellik 3"]`,
		p.Name, p.City, p.Country, p.Description, strings.Join(p.IncludedServices, ", "))
}
