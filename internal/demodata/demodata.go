// Package demodata holds the canned state used for scripted demonstrations:
// the permanently seeded demo classroom and the "day 1" / "day 30" snapshots
// the demo lifecycle swaps between.
package demodata

import (
	"time"

	"github.com/thebeat-edu/beat-go-api/internal/models"
)

// ClassroomID is the fixed id of the pre-seeded demo classroom.
const ClassroomID = "climate-change"

// ShareCode is the fixed share code of the demo classroom.
const ShareCode = "CLIMATE-2026"

// Classroom returns the demo classroom fixture. It must exist in the registry
// at all times, including after rehydration.
func Classroom(now time.Time) models.Classroom {
	return models.Classroom{
		ID:               ClassroomID,
		TopicID:          "climate-change",
		TeacherID:        "demo-teacher",
		Title:            "Climate Change: Science and Society",
		AssignmentPrompt: "Analyze how climate change coverage in The Atlantic has evolved. What perspectives are represented? What solutions are proposed?",
		ShareCode:        ShareCode,
		CitationStyle:    models.CitationMLA,
		CreatedAt:        now,
	}
}

// Snapshot is one complete replacement for the student research state. Demo
// transitions apply a snapshot wholesale; nothing is merged.
type Snapshot struct {
	Highlights      []models.Highlight
	Notes           []models.Note
	Essay           string
	SubmittedEssays []models.SubmittedEssay
}

// Fresh returns the "day 1" snapshot: a student who just joined.
func Fresh() Snapshot {
	return Snapshot{
		Highlights:      []models.Highlight{},
		Notes:           []models.Note{},
		Essay:           "",
		SubmittedEssays: []models.SubmittedEssay{},
	}
}

// Accumulated returns the "day 30" snapshot: thirty days of research and
// writing progress, plus one submitted essay for teacher review. Highlight
// text must exactly match the article content it was taken from.
func Accumulated() Snapshot {
	return Snapshot{
		Highlights: []models.Highlight{
			{
				ID:           "demo-h1",
				ArticleID:    "676065:1",
				ArticleTitle: "This Is the New Baseline Earth",
				Text:         "even if every nation managed to follow through on its stated emission reduction plans, the world would still be on track for nearly 3 degrees Celsius of global warming by 2100",
			},
			{
				ID:           "demo-h2",
				ArticleID:    "671361:2",
				ArticleTitle: "The Electricity Industry Quietly Spread Climate Denial for Years",
				Text:         "The industry's leaders made a fateful decision: They began denying that climate change existed altogether",
			},
			{
				ID:           "demo-h3",
				ArticleID:    "629486:1",
				ArticleTitle: "The 1.5 Degree Goal Is All But Dead",
				Text:         "The question is no longer whether we can prevent all harm, but how much harm we're willing to accept—and how much we're willing to sacrifice to prevent more",
			},
			{
				ID:           "demo-h4",
				ArticleID:    "672183:0",
				ArticleTitle: "A Cold Spot Near the Galápagos Is Fending Off Climate Change",
				Text:         "The cool water sustains populations of penguins, marine iguanas, sea lions, fur seals, and cetaceans that would not be able to stay on the equator year round",
			},
			{
				ID:           "demo-h5",
				ArticleID:    "682929:4",
				ArticleTitle: "The Real Stakes of the Fight Over \"Abundance\"",
				Text:         "In the era of global warming, however, preserving nature requires building new infrastructure: green energy sources, pipelines to transmit the energy, and new housing and transportation in cities where density allows for a less carbon intensive lifestyle",
			},
			{
				ID:           "demo-h6",
				ArticleID:    "675464:0",
				ArticleTitle: "The Banality of Bad Faith Science",
				Text:         "I left out the full truth to get my climate change paper published",
			},
		},
		Notes: []models.Note{
			{
				ID:      "demo-n1",
				Content: "Key theme: The gap between scientific consensus and policy action. Scientists have known for decades, but political will hasn't kept pace.",
			},
			{
				ID:      "demo-n2",
				Content: "Interesting tension: Old environmental movement focused on stopping construction, but climate action now REQUIRES building (solar, wind, transit). NEPA becoming an obstacle.",
			},
			{
				ID:      "demo-n3",
				Content: "Question to explore: How did industry denial campaigns affect public perception? Connection to tobacco tactics?",
			},
			{
				ID:      "demo-n4",
				Content: "The 1.5 degree goal seems increasingly unrealistic - should I argue for adaptation alongside mitigation? Most sources suggest we need both now.",
			},
		},
		Essay: demoEssayHTML,
		SubmittedEssays: []models.SubmittedEssay{
			{
				ID:          "essay-demo-1",
				ClassroomID: ClassroomID,
				StudentID:   "student-3",
				StudentName: "Taylor Williams",
				HTMLContent: demoEssayHTML,
				SubmittedAt: time.Date(2026, time.January, 30, 14, 30, 0, 0, time.UTC),
			},
		},
	}
}

const demoEssayHTML = `<h1>The Climate Reckoning: Why We Knew But Didn't Act</h1>

<h2>Introduction</h2>
<p>For decades, the scientific community has sounded the alarm on climate change, yet meaningful action remains elusive. As <em>The Atlantic's</em> coverage reveals, this isn't a failure of knowledge—it's a failure of <strong>collective will</strong>, complicated by deliberate misinformation campaigns and policy paralysis. This essay examines how industry denial, political inaction, and shifting environmental priorities have brought us to a critical crossroads in the fight against global warming.</p>

<h2>The Industry Denial Campaign</h2>
<p>The evidence of climate change has been clear since at least the 1980s. When NASA's top climate scientists testified before Congress in 1988 that global warming had already begun, the electricity industry didn't respond with innovation—they responded with <strong>denial</strong>. According to <em>The Atlantic</em>:</p>
<blockquote>The industry's leaders made a fateful decision: They began denying that climate change existed altogether.</blockquote>
<p>The Edison Electric Institute helped establish the Global Climate Coalition, one of the most notorious advocates of climate skepticism. This wasn't ignorance; it was <em>strategic obstruction</em>. The same playbook had worked for tobacco companies, and it worked for fossil fuel interests too. Even today, as one scientist admitted in <em>The Banality of Bad Faith Science</em>, pressure to downplay findings continues to shape how climate research gets published.</p>

<h2>The Consequences of Inaction</h2>
<p>Today, we face the consequences of those lost decades. The <strong>1.5 degree Celsius target</strong> that scientists once considered our safe limit is now, as one Atlantic article bluntly states, "all but dead." The math is sobering:</p>
<blockquote>Even if every nation managed to follow through on its stated emission reduction plans, the world would still be on track for nearly 3 degrees Celsius of global warming by 2100.</blockquote>
<p>The question is no longer whether we can prevent climate change—it's <strong>how much harm we're willing to accept</strong>. Meanwhile, isolated pockets of hope remain: a cold spot near the Galápagos continues to sustain populations of penguins, marine iguanas, and sea lions that would otherwise be unable to survive on the equator. But these refuges are exceptions, not the rule.</p>

<h2>The Path Forward</h2>
<p>What strikes me most is the cruel irony now facing environmentalists. The very laws designed to protect nature—like <strong>NEPA</strong>—have become obstacles to building the green infrastructure we desperately need. As the abundance movement argues, preserving nature in the era of global warming <em>requires</em> building new infrastructure: solar farms, wind turbines, energy pipelines, and dense urban housing that enables low-carbon lifestyles.</p>
<p>The old environmentalism said "stop building." The new environmentalism must say "build differently." Whether we can make this transition fast enough remains the defining question of our generation.</p>`
