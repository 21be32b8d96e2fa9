package registry

import "time"

// DefaultTimebox is how long a timeboxed command runs before it is killed.
const DefaultTimebox = 10 * time.Second

// DefaultPolicies is used when the config does not define any. Dev servers
// never exit on their own, so they are started, left running for a while and
// then killed.
var DefaultPolicies = []RunPolicy{
	{Command: "npm run dev", Mode: ModeTimeboxed, Duration: Duration(DefaultTimebox)},
}

// PolicyFor returns the policy for command. Commands without an exact match
// run in the foreground.
func (c *Config) PolicyFor(command string) RunPolicy {
	policies := c.Policies
	if len(policies) == 0 {
		policies = DefaultPolicies
	}
	for _, p := range policies {
		if p.Command != command {
			continue
		}
		if p.Mode == "" {
			p.Mode = ModeForeground
		}
		if p.Mode == ModeTimeboxed && p.Duration == 0 {
			p.Duration = Duration(DefaultTimebox)
		}
		return p
	}
	return RunPolicy{Command: command, Mode: ModeForeground}
}
