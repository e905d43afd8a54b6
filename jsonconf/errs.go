package jsonconf

import "errors"

var (
	ErrLoad      = errors.New("load error")
	ErrVariables = errors.New("invalid config_variables")
	ErrNullDoc   = errors.New("document is null")
)

// VariablesSection is the reserved top level member holding document
// defined variables.
const VariablesSection = "config_variables"

// DirVariable names the built in variable holding the directory of a
// loaded configuration file.
const DirVariable = "config_dir"
