// Package params loads the search parameters of a run from YAML.
//
// Parameters start from Default, are overlaid with the file contents and are
// then validated. Unknown keys are rejected. Cut strategies accept either
// their integer code or their name:
//
//	branchStrategy: pseudoCost
//	cutPass: 10
//	cut:
//	  strategy: periodic   # or 3
//	  freq: 5
//	  families:
//	    Gomory: {strategy: none}
//	    OA:     {strategy: 1, freq: 1}
package params
