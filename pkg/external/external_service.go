package external

import (
	"FoodShare-Backend/domain"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type (
	ExternalService interface {
		SearchProducts(ctx context.Context, query string) ([]domain.ProductResponse, error)
	}

	externalService struct {
		searchURL string
		client    *http.Client
	}
)

func NewExternalService(searchURL string) ExternalService {
	return &externalService{
		searchURL: searchURL,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

// SearchProducts forwards the query to Open Food Facts and reshapes the
// response. A single failed upstream call surfaces immediately, no retries.
func (s *externalService) SearchProducts(ctx context.Context, query string) ([]domain.ProductResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrMissingQuery
	}

	params := url.Values{}
	params.Set("search_terms", query)
	params.Set("search_simple", "1")
	params.Set("action", "process")
	params.Set("json", "1")
	params.Set("page_size", "10")
	params.Set("fields", "product_name,brands,categories,labels,image_small_url,code")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.searchURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, domain.ErrUpstreamFailure
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.ErrUpstreamFailure
	}

	var upstream struct {
		Products []struct {
			Code          string `json:"code"`
			ProductName   string `json:"product_name"`
			Brands        string `json:"brands"`
			Categories    string `json:"categories"`
			ImageSmallURL string `json:"image_small_url"`
		} `json:"products"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&upstream); err != nil {
		return nil, domain.ErrUpstreamFailure
	}

	products := make([]domain.ProductResponse, 0, len(upstream.Products))
	for _, p := range upstream.Products {
		name := strings.TrimSpace(p.ProductName)
		if name == "" {
			continue
		}

		product := domain.ProductResponse{
			Name:       name,
			Categories: strings.TrimSpace(p.Categories),
		}
		if p.Code != "" {
			code := p.Code
			product.Code = &code
		}
		if brand := strings.TrimSpace(p.Brands); brand != "" {
			product.Brand = &brand
		}
		if p.ImageSmallURL != "" {
			image := p.ImageSmallURL
			product.Image = &image
		}
		products = append(products, product)
	}
	return products, nil
}
