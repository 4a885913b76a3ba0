// Package skills provides the skillkit core: a catalog of self-describing
// capabilities (skills), discovery by name, category, tag or keyword, and a
// fault-isolating executor that validates caller arguments against each
// skill's declared parameter schema before invoking it.
package skills
