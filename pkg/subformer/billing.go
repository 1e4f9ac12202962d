package subformer

import "context"

// BillingService provides usage and billing queries.
type BillingService struct {
	client *Client
}

// newBillingService creates a new billing service.
func newBillingService(client *Client) *BillingService {
	return &BillingService{client: client}
}

// Usage returns the usage snapshot for the current billing period.
func (s *BillingService) Usage(ctx context.Context) (*Usage, error) {
	var usage Usage
	if err := s.client.http.request(ctx, "GET", "/billing/usage", nil, nil, &usage); err != nil {
		return nil, err
	}
	return &usage, nil
}

// UsageHistory returns daily usage for the past 30 days, one entry per day.
func (s *BillingService) UsageHistory(ctx context.Context) ([]DailyUsage, error) {
	var history []DailyUsage
	if err := s.client.http.request(ctx, "GET", "/billing/usage-history", nil, nil, &history); err != nil {
		return nil, err
	}
	return history, nil
}
