package common

import (
	"math"

	"github.com/bwmarrin/snowflake"
)

var snowflakeNode *snowflake.Node

func init() {
	var err error
	snowflakeNode, err = snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
}

// NextID returns a sortable unique id (used for request tracing, not for
// entity primary keys, which stay database auto-increment).
func NextID() int64 {
	return snowflakeNode.Generate().Int64()
}

// Round2 rounds a monetary value to 2 decimal places. All money crossing the
// storage boundary goes through this to keep numeric(10,2) columns exact.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
