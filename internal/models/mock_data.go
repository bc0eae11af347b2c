package models

// MockDataOptions shapes a generated mock dataset
type MockDataOptions struct {
	Users              int
	MaxCSPPerUser      int
	MaxTradingPerCSP   int
	IncompleteUserRate float64
	Seed               uint64
}

const (
	DefaultMockUsers            = 25
	DefaultMockMaxCSPPerUser    = 3
	DefaultMockMaxTradingPerCSP = 4
	MaxMockUsers                = 1000
)

// DefaultMockDataOptions returns the shape used when the caller leaves options empty
func DefaultMockDataOptions() MockDataOptions {
	return MockDataOptions{
		Users:              DefaultMockUsers,
		MaxCSPPerUser:      DefaultMockMaxCSPPerUser,
		MaxTradingPerCSP:   DefaultMockMaxTradingPerCSP,
		IncompleteUserRate: 0.05,
	}
}

// WithDefaults fills zero fields from DefaultMockDataOptions and caps the user count
func (o MockDataOptions) WithDefaults() MockDataOptions {
	d := DefaultMockDataOptions()
	if o.Users <= 0 {
		o.Users = d.Users
	}
	if o.Users > MaxMockUsers {
		o.Users = MaxMockUsers
	}
	if o.MaxCSPPerUser <= 0 {
		o.MaxCSPPerUser = d.MaxCSPPerUser
	}
	if o.MaxTradingPerCSP <= 0 {
		o.MaxTradingPerCSP = d.MaxTradingPerCSP
	}
	if o.IncompleteUserRate < 0 || o.IncompleteUserRate > 1 {
		o.IncompleteUserRate = d.IncompleteUserRate
	}
	return o
}
