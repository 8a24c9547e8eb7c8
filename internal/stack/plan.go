package stack

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"sort"
	"strings"
)

// Outputs maps an output key to the identifier or name a step produced.
type Outputs map[string]string

func (o Outputs) Keys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Step is one remote call (or a tightly bound pair of calls) in a workflow.
// Run receives every output produced so far and returns the outputs it declared in Produces.
type Step struct {
	Name     string
	Consumes []string
	Produces []string
	Run      func(in Outputs) (Outputs, error)
}

// Plan is walked strictly in order, stopping at the first failure.
type Plan []Step

// Check verifies that every consumed key is produced by an earlier step and that no key
// is produced twice.
func (p Plan) Check() error {
	available := map[string]string{}
	names := map[string]bool{}
	for _, step := range p {
		if step.Name == "" {
			return errors.New("plan has a step without name")
		}
		if names[step.Name] {
			return errors.Errorf("step %q appears twice", step.Name)
		}
		names[step.Name] = true
		if step.Run == nil {
			return errors.Errorf("step %q has nothing to run", step.Name)
		}

		var missing []string
		for _, key := range step.Consumes {
			if _, ok := available[key]; !ok {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			return errors.Errorf("step %q consumes %s before it is produced", step.Name, strings.Join(missing, ", "))
		}

		for _, key := range step.Produces {
			if producer, ok := available[key]; ok {
				return errors.Errorf("step %q produces %q already produced by step %q", step.Name, key, producer)
			}
			available[key] = step.Name
		}
	}
	return nil
}

// Execute runs the plan and returns the accumulated outputs. On failure the outputs gathered
// before the failing step are returned along with the error; nothing is rolled back.
func (p Plan) Execute() (Outputs, error) {
	if err := p.Check(); err != nil {
		return nil, errors.Wrap(err, "invalid plan")
	}

	outputs := Outputs{}
	for i, step := range p {
		log.Debug().Msgf("running step %d/%d %s ...", i+1, len(p), step.Name)

		in := Outputs{}
		for _, key := range step.Consumes {
			in[key] = outputs[key]
		}

		produced, err := step.Run(in)
		if err != nil {
			return outputs, errors.Wrapf(err, "step %s failed", step.Name)
		}

		for _, key := range step.Produces {
			value, ok := produced[key]
			if !ok || value == "" {
				return outputs, errors.Errorf("step %s did not produce %s", step.Name, key)
			}
			outputs[key] = value
		}

		if len(step.Produces) > 0 {
			var values []string
			for _, key := range step.Produces {
				values = append(values, outputs[key])
			}
			log.Info().Msgf("%s: %s", step.Name, strings.Join(values, ", "))
		} else {
			log.Info().Msgf("%s: done", step.Name)
		}
	}
	return outputs, nil
}
