package filter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dtnitsch/mcc-mnc-table/models"
)

// Strategy selects records. Each populated field must match; within a
// field any of the listed alternatives may match.
type Strategy struct {
	MCCs    map[int]struct{}
	MNCs    map[models.MNC]struct{}
	ISOs    map[string]struct{} // upper-cased
	Country []string            // lower-cased substrings
	Network []string            // lower-cased substrings
}

// ParseStrategy reads "key:value|value,key:value" pairs, e.g.
// "mcc:310|311,iso:us" or "network:vodafone".
func ParseStrategy(strategyStr string) (*Strategy, error) {
	if strategyStr == "" {
		return nil, nil // No filtering
	}

	strategy := &Strategy{}

	parts := strings.Split(strategyStr, ",")
	for _, part := range parts {
		kv := strings.SplitN(part, ":", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid filter part: %s", part)
		}
		key := strings.ToLower(strings.TrimSpace(kv[0]))
		values := strings.Split(kv[1], "|")

		for _, raw := range values {
			value := strings.TrimSpace(raw)
			if value == "" {
				return nil, fmt.Errorf("empty value in filter part: %s", part)
			}

			switch key {
			case "mcc":
				n, err := strconv.Atoi(value)
				if err != nil {
					return nil, fmt.Errorf("invalid mcc value: %s", value)
				}
				if strategy.MCCs == nil {
					strategy.MCCs = make(map[int]struct{})
				}
				strategy.MCCs[n] = struct{}{}
			case "mnc":
				if strategy.MNCs == nil {
					strategy.MNCs = make(map[models.MNC]struct{})
				}
				strategy.MNCs[models.MNC(strings.ToLower(value))] = struct{}{}
			case "iso":
				if strategy.ISOs == nil {
					strategy.ISOs = make(map[string]struct{})
				}
				strategy.ISOs[strings.ToUpper(value)] = struct{}{}
			case "country":
				strategy.Country = append(strategy.Country, strings.ToLower(value))
			case "network":
				strategy.Network = append(strategy.Network, strings.ToLower(value))
			default:
				return nil, fmt.Errorf("unknown filter key: %s", key)
			}
		}
	}

	return strategy, nil
}

// Match reports whether a record passes the strategy. A nil strategy matches everything.
func (s *Strategy) Match(r models.CarrierRecord) bool {
	if s == nil {
		return true
	}
	if len(s.MCCs) > 0 {
		if _, ok := s.MCCs[r.MCC]; !ok {
			return false
		}
	}
	if len(s.MNCs) > 0 {
		if _, ok := s.MNCs[models.MNC(strings.ToLower(r.MNC.String()))]; !ok {
			return false
		}
	}
	if len(s.ISOs) > 0 {
		if _, ok := s.ISOs[strings.ToUpper(r.ISO)]; !ok {
			return false
		}
	}
	if len(s.Country) > 0 && !containsAny(r.Country, s.Country) {
		return false
	}
	if len(s.Network) > 0 && !containsAny(r.Network, s.Network) {
		return false
	}
	return true
}

// Records returns the records that match, in their original order.
func Records(records []models.CarrierRecord, strategy *Strategy) []models.CarrierRecord {
	if strategy == nil {
		return records // No filtering
	}

	filtered := []models.CarrierRecord{}
	for _, r := range records {
		if strategy.Match(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func containsAny(text string, needles []string) bool {
	text = strings.ToLower(text)
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}
