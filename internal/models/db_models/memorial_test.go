package db_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRelationKind(t *testing.T) {
	for _, valid := range []string{"parent", "sibling", "spouse", "child", "grandparent", "grandchild", "friend", "other"} {
		kind, err := ParseRelationKind(valid)
		require.NoError(t, err, "relation %q should parse", valid)
		assert.Equal(t, RelationKind(valid), kind)
	}

	for _, invalid := range []string{"", "cousin", "Parent", "PARENT", "step-mother"} {
		_, err := ParseRelationKind(invalid)
		assert.Error(t, err, "relation %q should be rejected", invalid)
	}
}
