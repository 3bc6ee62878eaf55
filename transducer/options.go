package transducer

// Options holds the markers the transducer recognises.
// It has no dependencies on config files; callers map their own
// configuration onto it.
type Options struct {
	// DropPrefixes lists line prefixes whose lines are removed entirely.
	DropPrefixes []string

	// HeadlineSeparator marks an "origin → destination" headline.
	HeadlineSeparator string

	// PlanKeyword introduces a plan marker line ("Plan A").
	PlanKeyword string

	// PlanEndName is the plan name that closes all open plans.
	PlanEndName string

	// DepartureMarker and ArrivalMarker follow the HH:MM token.
	DepartureMarker string
	ArrivalMarker   string
}

// DefaultOptions returns the markers used by Ekitan text exports.
func DefaultOptions() Options {
	return Options{
		DropPrefixes:      []string{"往復：", "※大人"},
		HeadlineSeparator: " → ",
		PlanKeyword:       "Plan",
		PlanEndName:       "End",
		DepartureMarker:   "発",
		ArrivalMarker:     "着",
	}
}

// withDefaults fills empty fields from DefaultOptions. A nil DropPrefixes
// takes the defaults; an empty non-nil slice disables dropping.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.DropPrefixes == nil {
		o.DropPrefixes = def.DropPrefixes
	}
	if o.HeadlineSeparator == "" {
		o.HeadlineSeparator = def.HeadlineSeparator
	}
	if o.PlanKeyword == "" {
		o.PlanKeyword = def.PlanKeyword
	}
	if o.PlanEndName == "" {
		o.PlanEndName = def.PlanEndName
	}
	if o.DepartureMarker == "" {
		o.DepartureMarker = def.DepartureMarker
	}
	if o.ArrivalMarker == "" {
		o.ArrivalMarker = def.ArrivalMarker
	}
	return o
}
