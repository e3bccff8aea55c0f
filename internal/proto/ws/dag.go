package ws

import "google.golang.org/protobuf/encoding/protowire"

type DagNodeStatus int32

const (
	DagNodeStatus_DAG_NODE_STATUS_UNSPECIFIED DagNodeStatus = 0
	DagNodeStatus_DAG_NODE_STATUS_LOCKED      DagNodeStatus = 1
	DagNodeStatus_DAG_NODE_STATUS_AVAILABLE   DagNodeStatus = 2
	DagNodeStatus_DAG_NODE_STATUS_IN_PROGRESS DagNodeStatus = 3
	DagNodeStatus_DAG_NODE_STATUS_COMPLETED   DagNodeStatus = 4
)

type DagNodeKind int32

const (
	DagNodeKind_DAG_NODE_KIND_UNSPECIFIED DagNodeKind = 0
	DagNodeKind_DAG_NODE_KIND_FACTORY     DagNodeKind = 1
	DagNodeKind_DAG_NODE_KIND_UNIT        DagNodeKind = 2
	DagNodeKind_DAG_NODE_KIND_STORY       DagNodeKind = 3
)

type UpgradeEffectType int32

const (
	UpgradeEffectType_UPGRADE_EFFECT_TYPE_UNSPECIFIED      UpgradeEffectType = 0
	UpgradeEffectType_UPGRADE_EFFECT_TYPE_SPEED_MULTIPLIER UpgradeEffectType = 1
	UpgradeEffectType_UPGRADE_EFFECT_TYPE_MISSILE_UNLOCK   UpgradeEffectType = 2
	UpgradeEffectType_UPGRADE_EFFECT_TYPE_HEAT_CAPACITY    UpgradeEffectType = 3
	UpgradeEffectType_UPGRADE_EFFECT_TYPE_HEAT_EFFICIENCY  UpgradeEffectType = 4
)

type StoryIntent int32

const (
	StoryIntent_STORY_INTENT_UNSPECIFIED StoryIntent = 0
	StoryIntent_STORY_INTENT_FACTORY     StoryIntent = 1
	StoryIntent_STORY_INTENT_UNIT        StoryIntent = 2
)

// UpgradeEffect carries either a multiplier or an unlock id in Value.
type UpgradeEffect struct {
	Type  UpgradeEffectType
	Value isUpgradeEffect_Value
}

type isUpgradeEffect_Value interface {
	isUpgradeEffect_Value()
}

type UpgradeEffect_Multiplier struct{ Multiplier float64 }
type UpgradeEffect_UnlockId struct{ UnlockId string }

func (*UpgradeEffect_Multiplier) isUpgradeEffect_Value() {}
func (*UpgradeEffect_UnlockId) isUpgradeEffect_Value()   {}

type DagNode struct {
	Id         string
	Kind       DagNodeKind
	Label      string
	Status     DagNodeStatus
	RemainingS float64
	DurationS  float64
	Repeatable bool
	Effects    []*UpgradeEffect
}

type DagState struct {
	Nodes []*DagNode
}

type StoryDialogueChoice struct {
	Id   string
	Text string
}

type StoryTutorialTip struct {
	Title string
	Text  string
}

type StoryDialogue struct {
	Speaker       string
	Text          string
	Intent        StoryIntent
	ContinueLabel string
	Choices       []*StoryDialogueChoice
	TutorialTip   *StoryTutorialTip
}

type StoryEvent struct {
	ChapterId string
	NodeId    string
	Timestamp float64
}

type StoryState struct {
	ActiveNode   string
	Dialogue     *StoryDialogue
	Available    []string
	Flags        map[string]bool
	RecentEvents []*StoryEvent
}

func (m *UpgradeEffect) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendInt32(b, 1, int32(m.Type))
	switch v := m.Value.(type) {
	case *UpgradeEffect_Multiplier:
		b = appendDoubleAlways(b, 2, v.Multiplier)
	case *UpgradeEffect_UnlockId:
		b = appendStringAlways(b, 3, v.UnlockId)
	}
	return b
}

func (m *UpgradeEffect) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, f field) error {
		switch num {
		case 1:
			m.Type = UpgradeEffectType(f.int32())
		case 2:
			m.Value = &UpgradeEffect_Multiplier{Multiplier: f.double()}
		case 3:
			m.Value = &UpgradeEffect_UnlockId{UnlockId: f.str()}
		}
		return nil
	})
}

func (m *DagNode) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendString(b, 1, m.Id)
	b = appendInt32(b, 2, int32(m.Kind))
	b = appendString(b, 3, m.Label)
	b = appendInt32(b, 4, int32(m.Status))
	b = appendDouble(b, 5, m.RemainingS)
	b = appendDouble(b, 6, m.DurationS)
	b = appendBool(b, 7, m.Repeatable)
	for _, eff := range m.Effects {
		b = appendMessage(b, 8, eff)
	}
	return b
}

func (m *DagNode) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, f field) error {
		switch num {
		case 1:
			m.Id = f.str()
		case 2:
			m.Kind = DagNodeKind(f.int32())
		case 3:
			m.Label = f.str()
		case 4:
			m.Status = DagNodeStatus(f.int32())
		case 5:
			m.RemainingS = f.double()
		case 6:
			m.DurationS = f.double()
		case 7:
			m.Repeatable = f.boolean()
		case 8:
			eff := &UpgradeEffect{}
			if err := decodeMessage(num, f, eff); err != nil {
				return err
			}
			m.Effects = append(m.Effects, eff)
		}
		return nil
	})
}

func (m *DagState) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	for _, node := range m.Nodes {
		b = appendMessage(b, 1, node)
	}
	return b
}

func (m *DagState) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, f field) error {
		if num != 1 {
			return nil
		}
		node := &DagNode{}
		if err := decodeMessage(num, f, node); err != nil {
			return err
		}
		m.Nodes = append(m.Nodes, node)
		return nil
	})
}

func (m *StoryDialogueChoice) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendString(b, 1, m.Id)
	return appendString(b, 2, m.Text)
}

func (m *StoryDialogueChoice) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, f field) error {
		switch num {
		case 1:
			m.Id = f.str()
		case 2:
			m.Text = f.str()
		}
		return nil
	})
}

func (m *StoryTutorialTip) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendString(b, 1, m.Title)
	return appendString(b, 2, m.Text)
}

func (m *StoryTutorialTip) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, f field) error {
		switch num {
		case 1:
			m.Title = f.str()
		case 2:
			m.Text = f.str()
		}
		return nil
	})
}

func (m *StoryDialogue) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendString(b, 1, m.Speaker)
	b = appendString(b, 2, m.Text)
	b = appendInt32(b, 3, int32(m.Intent))
	b = appendString(b, 4, m.ContinueLabel)
	for _, choice := range m.Choices {
		b = appendMessage(b, 5, choice)
	}
	if m.TutorialTip != nil {
		b = appendMessage(b, 6, m.TutorialTip)
	}
	return b
}

func (m *StoryDialogue) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, f field) error {
		switch num {
		case 1:
			m.Speaker = f.str()
		case 2:
			m.Text = f.str()
		case 3:
			m.Intent = StoryIntent(f.int32())
		case 4:
			m.ContinueLabel = f.str()
		case 5:
			choice := &StoryDialogueChoice{}
			if err := decodeMessage(num, f, choice); err != nil {
				return err
			}
			m.Choices = append(m.Choices, choice)
		case 6:
			m.TutorialTip = &StoryTutorialTip{}
			return decodeMessage(num, f, m.TutorialTip)
		}
		return nil
	})
}

func (m *StoryEvent) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendString(b, 1, m.ChapterId)
	b = appendString(b, 2, m.NodeId)
	return appendDouble(b, 3, m.Timestamp)
}

func (m *StoryEvent) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, f field) error {
		switch num {
		case 1:
			m.ChapterId = f.str()
		case 2:
			m.NodeId = f.str()
		case 3:
			m.Timestamp = f.double()
		}
		return nil
	})
}

// flagEntry is the map<string, bool> entry message.
type flagEntry struct {
	key   string
	value bool
}

func (m *flagEntry) appendTo(b []byte) []byte {
	b = appendStringAlways(b, 1, m.key)
	return appendBool(b, 2, m.value)
}

func (m *flagEntry) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, f field) error {
		switch num {
		case 1:
			m.key = f.str()
		case 2:
			m.value = f.boolean()
		}
		return nil
	})
}

func (m *StoryState) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendString(b, 1, m.ActiveNode)
	if m.Dialogue != nil {
		b = appendMessage(b, 2, m.Dialogue)
	}
	for _, id := range m.Available {
		b = appendStringAlways(b, 3, id)
	}
	for _, key := range sortedFlagKeys(m.Flags) {
		b = appendMessage(b, 4, &flagEntry{key: key, value: m.Flags[key]})
	}
	for _, ev := range m.RecentEvents {
		b = appendMessage(b, 5, ev)
	}
	return b
}

func (m *StoryState) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, f field) error {
		switch num {
		case 1:
			m.ActiveNode = f.str()
		case 2:
			m.Dialogue = &StoryDialogue{}
			return decodeMessage(num, f, m.Dialogue)
		case 3:
			m.Available = append(m.Available, f.str())
		case 4:
			entry := &flagEntry{}
			if err := decodeMessage(num, f, entry); err != nil {
				return err
			}
			if m.Flags == nil {
				m.Flags = make(map[string]bool)
			}
			m.Flags[entry.key] = entry.value
		case 5:
			ev := &StoryEvent{}
			if err := decodeMessage(num, f, ev); err != nil {
				return err
			}
			m.RecentEvents = append(m.RecentEvents, ev)
		}
		return nil
	})
}
