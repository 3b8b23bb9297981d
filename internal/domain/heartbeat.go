package domain

import "sort"

// Heartbeat maps a service name to whether it reported healthy
type Heartbeat map[string]bool

func (h Heartbeat) UnhealthyServices() []string {
	out := []string{}
	for name, healthy := range h {
		if !healthy {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
