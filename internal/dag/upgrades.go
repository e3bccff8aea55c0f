package dag

// DescribeEffect renders a short label for an upgrade effect, such as
// "+20% max missile speed". target is "ship" or "missile" (see Target).
func DescribeEffect(effect UpgradeEffect, target string) string {
	if id, ok := effect.UnlockID(); ok {
		return "unlocks " + id
	}
	m, ok := effect.Multiplier()
	if !ok {
		return ""
	}
	percent := int((m-1.0)*100 + 0.5)
	return upgradeDescription(effect.Type, target, percent)
}

// DescribeNode joins the descriptions of every effect on node.
func DescribeNode(node Node) string {
	target := Target(node.ID)
	out := ""
	for _, eff := range node.Effects {
		desc := DescribeEffect(eff, target)
		if desc == "" {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += desc
	}
	return out
}

func upgradeDescription(t EffectType, target string, percent int) string {
	switch t {
	case EffectSpeedMultiplier:
		if target == "missile" {
			return "+" + itoa(percent) + "% max missile speed"
		}
		return "+" + itoa(percent) + "% max ship speed"
	case EffectHeatCapacity:
		if target == "missile" {
			return "+" + itoa(percent) + "% missile heat capacity"
		}
		return "+" + itoa(percent) + "% ship heat capacity"
	case EffectHeatEfficiency:
		return "+" + itoa(percent) + "% heat efficiency"
	default:
		return ""
	}
}

func itoa(n int) string {
	// minimal int to string to avoid importing strconv just for labels
	if n == 0 {
		return "0"
	}
	neg := false
	if n < 0 {
		neg = true
		n = -n
	}
	var buf [12]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + (n % 10))
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
