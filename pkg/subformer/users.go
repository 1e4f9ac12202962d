package subformer

import "context"

// UsersService provides profile and rate limit queries.
type UsersService struct {
	client *Client
}

// newUsersService creates a new users service.
func newUsersService(client *Client) *UsersService {
	return &UsersService{client: client}
}

// Me returns the authenticated user's profile.
func (s *UsersService) Me(ctx context.Context) (*User, error) {
	var user User
	if err := s.client.http.request(ctx, "GET", "/users/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// userEnvelope is the response wrapper used by the profile update endpoint.
type userEnvelope struct {
	User User `json:"user"`
}

// UpdateMe updates the authenticated user's name and email.
func (s *UsersService) UpdateMe(ctx context.Context, name, email string) (*User, error) {
	body := struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}{
		Name:  name,
		Email: email,
	}

	var resp userEnvelope
	if err := s.client.http.request(ctx, "PUT", "/users/me", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// RateLimit returns the current rate limit status for creating dubbing
// jobs. The snapshot is not refreshed automatically.
func (s *UsersService) RateLimit(ctx context.Context) (*RateLimit, error) {
	var rl RateLimit
	if err := s.client.http.request(ctx, "GET", "/users/me/rate-limit", nil, nil, &rl); err != nil {
		return nil, err
	}
	return &rl, nil
}
