// Package wire converts engine results into the flat string map the legacy
// scripting client consumes. The client cannot parse native JSON booleans,
// so success flags are serialized as the literal strings "true" and "false".
// This package is the only place that conversion happens; everything inside
// the engine uses native booleans.
package wire

import (
	"fmt"

	"github.com/emberveil/rp-combat/internal/services/combat"
)

// BoolString serializes a boolean for the scripting client
func BoolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// ActionPayload flattens an ActionResult into the wire map
func ActionPayload(res *combat.ActionResult) map[string]string {
	payload := map[string]string{
		"success":     BoolString(res.Success),
		"caster_id":   res.CasterID,
		"caster_name": res.CasterName,
		"modifier":    fmt.Sprintf("%d", res.ModifierUsed),
		"narrative":   res.Narrative,
	}
	if res.AbilityName != "" {
		payload["ability"] = res.AbilityName
	}
	if res.Check != nil {
		payload["roll"] = fmt.Sprintf("%d", res.Check.Roll)
		payload["total"] = fmt.Sprintf("%d", res.Check.Total)
		payload["target_number"] = fmt.Sprintf("%d", res.Check.TargetNumber)
	}

	payload["target_count"] = fmt.Sprintf("%d", len(res.Targets))
	for i, t := range res.Targets {
		prefix := fmt.Sprintf("target_%d_", i)
		payload[prefix+"id"] = t.TargetID
		payload[prefix+"name"] = t.TargetName
		payload[prefix+"damage"] = fmt.Sprintf("%d", t.Damage)
		payload[prefix+"heal"] = fmt.Sprintf("%d", t.Heal)
		payload[prefix+"hp_before"] = fmt.Sprintf("%d", t.HPBefore)
		payload[prefix+"hp_after"] = fmt.Sprintf("%d", t.HPAfter)
	}
	return payload
}

// StatCheckPayload flattens a StatCheckResult into the wire map
func StatCheckPayload(res *combat.StatCheckResult) map[string]string {
	return map[string]string{
		"success":       BoolString(res.Success),
		"caster_id":     res.CasterID,
		"caster_name":   res.CasterName,
		"stat":          res.Stat,
		"roll":          fmt.Sprintf("%d", res.Check.Roll),
		"total":         fmt.Sprintf("%d", res.Check.Total),
		"target_number": fmt.Sprintf("%d", res.Check.TargetNumber),
		"narrative":     res.Narrative,
	}
}
