package engine

import (
	"testing"

	"github.com/vovakirdan/boxworld/internal/content"
	"github.com/vovakirdan/boxworld/internal/core"
)

func talker(name string, at core.Coord, nodes ...content.DialogueNode) *content.Entity {
	return &content.Entity{
		Name:        name,
		Location:    at,
		Interactive: true,
		State:       content.State{},
		Dialogue:    nodes,
	}
}

func TestConditionalGreeting(t *testing.T) {
	sage := talker("sage", core.C(6, 5),
		content.DialogueNode{
			Text:      "Hi",
			Condition: content.StateEquals{"met": false},
			Choices: []content.Choice{{
				Text: "Nice to meet you",
				Response: &content.Response{
					Text:     "Likewise.",
					OnSelect: content.EffectFunc(func(s content.State, _ content.World) { s["met"] = true }),
				},
			}},
		},
		content.DialogueNode{
			Text:      "Welcome back",
			Condition: content.PredicateFunc(func(s content.State) bool { return s.Bool("met") }),
		},
	)
	e, _ := newEngine(t, pack(room("a", nil, sage)))
	s := e.State()

	e.Tick(action)
	if s.Cursor.Text != "Hi" || s.Cursor.Index != 0 {
		t.Fatalf("first line = %q (index %d), want Hi", s.Cursor.Text, s.Cursor.Index)
	}
	if s.Cursor.Highlight != 0 {
		t.Errorf("Highlight = %d, want 0 on a node with choices", s.Cursor.Highlight)
	}

	e.Tick(action) // select
	if s.Cursor.Text != "Likewise." || !s.Cursor.ShowingResponse {
		t.Fatalf("response = %q showing=%v", s.Cursor.Text, s.Cursor.ShowingResponse)
	}
	e.Tick(idle)
	if s.Cursor.Text != "Likewise." {
		t.Errorf("text sync overwrote the response: %q", s.Cursor.Text)
	}

	ticks(e, 2, action) // advance to "Welcome back", then end
	if s.Engaged() {
		t.Fatal("conversation should have ended")
	}

	e.Tick(action)
	if s.Cursor.Text != "Welcome back" || s.Cursor.Index != 1 {
		t.Errorf("second visit opened with %q (index %d), want Welcome back", s.Cursor.Text, s.Cursor.Index)
	}
}

func TestChoiceSelection(t *testing.T) {
	question := content.DialogueNode{
		Text: "Coming along?",
		Choices: []content.Choice{
			{Text: "Yes", Response: &content.Response{Text: "Great!"}},
			{Text: "No"},
		},
	}

	t.Run("with response", func(t *testing.T) {
		e, _ := newEngine(t, pack(room("a", nil, talker("guide", core.C(5, 6), question))))
		s := e.State()
		e.Tick(action)
		e.Tick(action)
		if s.Cursor.Text != "Great!" {
			t.Errorf("Text = %q, want Great!", s.Cursor.Text)
		}
		if !s.Cursor.ShowingResponse {
			t.Error("ShowingResponse = false, want true")
		}
		if s.Cursor.Choices != nil || s.Cursor.Highlight != -1 {
			t.Errorf("choices not cleared: %v highlight %d", s.Cursor.Choices, s.Cursor.Highlight)
		}
	})

	t.Run("without response", func(t *testing.T) {
		e, _ := newEngine(t, pack(room("a", nil, talker("guide", core.C(5, 6), question))))
		s := e.State()
		e.Tick(action)
		e.Tick(down)
		if s.Cursor.Highlight != 1 {
			t.Fatalf("Highlight = %d, want 1", s.Cursor.Highlight)
		}
		e.Tick(action)
		if s.Cursor.Text != "Coming along?" {
			t.Errorf("Text = %q, want unchanged", s.Cursor.Text)
		}
		if s.Cursor.ShowingResponse {
			t.Error("ShowingResponse = true, want false")
		}
		if s.Cursor.Choices != nil || s.Cursor.Highlight != -1 {
			t.Errorf("choices not cleared: %v highlight %d", s.Cursor.Choices, s.Cursor.Highlight)
		}
	})
}

func TestChoiceNavigationClampsAndIsEdgeTriggered(t *testing.T) {
	node := content.DialogueNode{
		Text:    "Pick",
		Choices: []content.Choice{{Text: "a"}, {Text: "b"}, {Text: "c"}},
	}
	e, _ := newEngine(t, pack(room("a", nil, talker("n", core.C(4, 5), node))))
	s := e.State()
	e.Tick(action)

	steps := []struct {
		in   core.InputFrame
		want int
	}{
		{up, 0},   // clamped at top
		{idle, 0}, // release
		{down, 1}, // press
		{down, 1}, // held: no repeat
		{idle, 1},
		{down, 2},
		{idle, 2},
		{down, 2}, // clamped at bottom
		{up, 1},   // direct switch counts as a fresh press
	}
	for i, st := range steps {
		e.Tick(st.in)
		if s.Cursor.Highlight != st.want {
			t.Fatalf("step %d: Highlight = %d, want %d", i, s.Cursor.Highlight, st.want)
		}
	}
}

func TestChoiceNavigationFollowsPressPulse(t *testing.T) {
	node := content.DialogueNode{
		Text:    "Pick",
		Choices: []content.Choice{{Text: "a"}, {Text: "b"}, {Text: "c"}},
	}
	e, _ := newEngine(t, pack(room("a", nil, talker("n", core.C(4, 5), node))))
	s := e.State()
	e.Tick(action)

	pressDown := core.InputFrame{Held: core.DirDown, Pressed: core.DirDown}
	steps := []struct {
		in   core.InputFrame
		want int
	}{
		{pressDown, 1}, // edge and pulse together move once
		{down, 1},
		{pressDown, 2}, // repeat press while held
		{pressDown, 2}, // clamped
		{core.InputFrame{Held: core.DirDown, Pressed: core.DirUp}, 1},
	}
	for i, st := range steps {
		e.Tick(st.in)
		if s.Cursor.Highlight != st.want {
			t.Fatalf("step %d: Highlight = %d, want %d", i, s.Cursor.Highlight, st.want)
		}
	}
}

func TestRewardsAreIdempotent(t *testing.T) {
	key := item("brass key")
	chest := talker("chest", core.C(5, 4),
		content.DialogueNode{Text: "You find a key.", Reward: key},
		content.DialogueNode{
			Text: "Take another?",
			Choices: []content.Choice{{
				Text:     "Yes",
				Reward:   key,
				Response: &content.Response{Text: "It is the same key.", Reward: key},
			}},
		},
	)
	e, rec := newEngine(t, pack(room("a", nil, chest)))
	s := e.State()

	for visit := 0; visit < 3; visit++ {
		for i := 0; i < 6 && (i == 0 || s.Engaged()); i++ {
			e.Tick(action)
		}
	}
	if s.Inventory.Len() != 1 {
		t.Errorf("inventory = %v, want one item", s.Inventory.Names())
	}
	rewards := 0
	for _, c := range rec.cues {
		if c.Kind == CueReward {
			rewards++
		}
	}
	if rewards != 1 {
		t.Errorf("reward cues = %d, want 1", rewards)
	}
	journal := 0
	for _, ev := range rec.events {
		if ev.Kind == EventReward {
			journal++
		}
	}
	if journal != 1 {
		t.Errorf("reward events = %d, want 1", journal)
	}
}

func TestAdvanceIsMonotonic(t *testing.T) {
	nodes := make([]content.DialogueNode, 7)
	for i := range nodes {
		nodes[i] = content.DialogueNode{Text: "line"}
		if i%3 == 1 {
			nodes[i].Condition = content.StateEquals{"never": true}
		}
	}
	e, _ := newEngine(t, pack(room("a", nil, talker("n", core.C(6, 6), nodes...))))
	s := e.State()

	e.Tick(action)
	prev := s.Cursor.Index
	advances := 0
	for s.Engaged() {
		e.Tick(action)
		advances++
		if advances > len(nodes) {
			t.Fatal("conversation did not end within len(dialogue) advances")
		}
		if s.Engaged() && s.Cursor.Index <= prev {
			t.Fatalf("index went from %d to %d", prev, s.Cursor.Index)
		}
		prev = s.Cursor.Index
	}
	if s.Cursor.Index != -1 {
		t.Errorf("Index = %d after end, want -1", s.Cursor.Index)
	}
}

func TestChoiceClassAppliedAndStripped(t *testing.T) {
	npc := talker("smith", core.C(5, 6),
		content.DialogueNode{
			Text: "Need a blade?",
			Choices: []content.Choice{
				{Text: "Yes", Class: "-forging", Response: &content.Response{Text: "Give me a moment."}},
			},
		},
	)
	e, _ := newEngine(t, pack(room("a", nil, npc)))
	e.Tick(action)
	e.Tick(action)
	if !npc.Classes.Has("-forging") {
		t.Fatalf("choice class missing after selection: %v", npc.Classes)
	}
	e.Tick(action)
	if e.State().Engaged() {
		t.Fatal("conversation should be over")
	}
	if npc.Classes.Has("-forging") {
		t.Errorf("choice class not stripped: %v", npc.Classes)
	}
}

func TestConversationLifecycleClassesAndCues(t *testing.T) {
	npc := talker("bard", core.C(5, 6),
		content.DialogueNode{Text: "A song for you, traveller, from the hills.", Class: "-singing"},
		content.DialogueNode{Text: "Short.", Class: "-bowing"},
	)
	e, rec := newEngine(t, pack(room("a", nil, npc)))
	s := e.State()
	e.Tick(idle)
	rec.reset()

	e.Tick(action)
	if !s.Classes.Has(ClassChat) || !s.Classes.Has(ClassZoomIn) || !s.Zoomed {
		t.Errorf("ambient classes on start = %v, zoomed=%v", s.Classes, s.Zoomed)
	}
	if !npc.Classes.Has("-singing") {
		t.Errorf("node class missing: %v", npc.Classes)
	}

	e.Tick(action)
	e.Tick(action)
	if s.Engaged() {
		t.Fatal("conversation should be over")
	}
	if npc.Classes.Has("-singing") || npc.Classes.Has("-bowing") {
		t.Errorf("node classes not stripped: %v", npc.Classes)
	}
	if !npc.Classes.Has(ClassVisited) {
		t.Errorf("visited class missing: %v", npc.Classes)
	}
	if s.Classes.Has(ClassChat) || s.Classes.Has(ClassZoomIn) || s.Zoomed {
		t.Errorf("ambient state not cleared: %v zoomed=%v", s.Classes, s.Zoomed)
	}

	want := []string{"text:long", "ambient:attenuated", "text:short", "ambient:normal"}
	if got := rec.cueNames(); !equalStrings(got, want) {
		t.Errorf("cues = %v, want %v", got, want)
	}

	e.Tick(idle)
	if npc.IsActive || npc.Classes.Has(ClassActive) {
		t.Error("entity still flagged active after the conversation")
	}
}

func TestStartPrefersUnvisited(t *testing.T) {
	a := talker("a", core.C(4, 5), content.DialogueNode{Text: "from a"})
	b := talker("b", core.C(6, 5), content.DialogueNode{Text: "from b"})
	e, _ := newEngine(t, pack(room("lvl", nil, a, b)))
	s := e.State()

	e.Tick(action)
	if s.Active != a {
		t.Fatalf("first talk went to %q", activeName(s))
	}
	e.Tick(action) // end
	e.Tick(action)
	if s.Active != b {
		t.Fatalf("second talk went to %q, want b", activeName(s))
	}
	e.Tick(action)
	e.Tick(action)
	if s.Active != a {
		t.Errorf("once all visited the first nearby entity should answer, got %q", activeName(s))
	}
}

func TestStartRequiresAvailableLine(t *testing.T) {
	tests := []struct {
		name   string
		entity *content.Entity
	}{
		{"no dialogue", talker("mute", core.C(5, 6))},
		{"no passing line", talker("shy", core.C(5, 6),
			content.DialogueNode{Text: "x", Condition: content.StateEquals{"ready": true}})},
		{"not interactive", &content.Entity{Name: "rock", Location: core.C(5, 6),
			Dialogue: []content.DialogueNode{{Text: "..."}}}},
		{"too far", talker("far", core.C(8, 8), content.DialogueNode{Text: "hey"})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newEngine(t, pack(room("a", nil, tt.entity)))
			e.Tick(action)
			if e.State().Engaged() {
				t.Error("conversation started")
			}
			if tt.entity.HasInteracted {
				t.Error("HasInteracted set without a conversation")
			}
		})
	}
}

func TestEffectCanSwitchLevel(t *testing.T) {
	door := talker("door", core.C(5, 4),
		content.DialogueNode{
			Text: "Enter?",
			Choices: []content.Choice{{
				Text:     "Yes",
				Response: &content.Response{Text: "You step through.", OnSelect: content.GoTo{Level: "b"}},
			}},
		},
	)
	e, _ := newEngine(t, pack(room("a", nil, door), room("b", nil)))
	e.Tick(action)
	e.Tick(action)
	s := e.State()
	if s.Level.ID != "b" {
		t.Fatalf("Level = %s, want b", s.Level.ID)
	}
	if s.Engaged() || s.Cursor.Text != "" {
		t.Errorf("conversation survived the level switch: active=%v text=%q", s.Active, s.Cursor.Text)
	}
	if s.Zoomed || s.Classes.Has(ClassChat) {
		t.Errorf("ambient state not restored: %v", s.Classes)
	}
}

func TestClassifyText(t *testing.T) {
	tests := []struct {
		text string
		want TextLength
	}{
		{"", TextShort},
		{"exactly twenty chars", TextShort},
		{"twenty-one characters", TextRegular},
		{"this line has exactly forty characters!!", TextRegular},
		{"this line is a little over forty characters", TextLong},
	}
	for _, tt := range tests {
		if got := ClassifyText(tt.text); got != tt.want {
			t.Errorf("ClassifyText(%q) [%d] = %s, want %s", tt.text, len(tt.text), got, tt.want)
		}
	}
}

func activeName(s *State) string {
	if s.Active == nil {
		return ""
	}
	return s.Active.Name
}
