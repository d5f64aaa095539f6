package exec

import "os"

// config holds execution settings, split between globals applied at
// creation time and locals that apply to a single invocation. Locals always
// win over globals.
type config struct {
	globalEnv        map[string]string
	globalDir        string
	globalInheritEnv bool

	localEnv        map[string]string
	localDir        string
	localInheritEnv *bool
}

func newConfig() *config {
	return &config{
		globalEnv: make(map[string]string),
		localEnv:  make(map[string]string),
	}
}

// clone copies the global configuration. Local settings are not carried over.
func (c *config) clone() *config {
	clone := newConfig()
	for k, v := range c.globalEnv {
		clone.globalEnv[k] = v
	}
	clone.globalDir = c.globalDir
	clone.globalInheritEnv = c.globalInheritEnv
	return clone
}

// effectiveEnv builds the environment for the next invocation in the form
// expected by os/exec. The parent environment comes first when inheritance
// is enabled, so explicit variables override it.
func (c *config) effectiveEnv() []string {
	var env []string
	if c.effectiveInheritEnv() {
		env = os.Environ()
	}
	for k, v := range c.globalEnv {
		env = append(env, k+"="+v)
	}
	for k, v := range c.localEnv {
		env = append(env, k+"="+v)
	}
	return env
}

func (c *config) effectiveDir() string {
	if c.localDir != "" {
		return c.localDir
	}
	return c.globalDir
}

func (c *config) effectiveInheritEnv() bool {
	if c.localInheritEnv != nil {
		return *c.localInheritEnv
	}
	return c.globalInheritEnv
}

func (c *config) resetLocal() {
	c.localEnv = make(map[string]string)
	c.localDir = ""
	c.localInheritEnv = nil
}
