package techdeck

import (
	"github.com/vansh-app/techdeck/pkg/techdeck/deck"
	"github.com/vansh-app/techdeck/pkg/techdeck/models"
)

// Screenshots the deck looks for in the images directory.
var (
	TreeFixed = models.SlideImage{
		Filename: "01_tree_fixed.png",
		Caption:  "Tree after fixes (dynamic leveling + spouse/child placement)",
	}
	AudioUploadFixed = models.SlideImage{
		Filename: "02_audio_upload_fixed.png",
		Caption:  "Katha upload working after multipart header fix",
	}
	SettingsSimplified = models.SlideImage{
		Filename: "03_settings_simplified.png",
		Caption:  "Settings simplified to essentials",
	}
	NetworkErrorBefore = models.SlideImage{
		Filename: "04_network_error_before.png",
		Caption:  "Example error state captured during testing",
	}
)

// Images lists every screenshot in the order the deck places them.
var Images = []models.SlideImage{TreeFixed, NetworkErrorBefore, AudioUploadFixed, SettingsSimplified}

// slides builds each page in presentation order.
var slides = []func(*builder) error{
	titleSlide,
	overviewSlide,
	outputsSlide,
	challengesSlide,
	rootCausesSlide,
	solutionsSlide,
	algorithmSlide,
	learningsSlide,
	nextStepsSlide,
}

func titleSlide(b *builder) error {
	s := b.newSlide(DeckTitle, "Debugging journey: Vriksha tree, API correctness, caching, and uploads")

	deck.AddCard(s, in(0.8), in(1.6), in(11.8), in(2.4))
	deck.AddText(s, in(1.2), in(1.95), in(11), in(1.6),
		"From ‘flat & wrong’ → correct, dynamic, production-ready", 34, true, deck.Ink)
	deck.AddText(s, in(1.2), in(3.2), in(11), in(0.6),
		"React Native (Expo) • TypeScript • Express/MySQL • Graph layout algorithms", 16, false, deck.Muted)
	return nil
}

func overviewSlide(b *builder) error {
	s := b.newSlide("System Overview", "Key pieces involved in the issues")

	deck.AddCard(s, in(0.8), in(1.5), in(6.0), in(5.6))
	deck.AddPlainText(s, in(1.2), in(1.75), in(5.2), in(0.4), "Frontend (Expo)")
	deck.AddBullets(s, in(1.2), in(2.15), in(5.2), in(4.8), []string{
		"Vriksha: renders family tree layout + connectors",
		"Katha: audio record → multipart upload",
		"Settings: simplified UX",
		"State: Zustand stores + hooks",
	})

	deck.AddCard(s, in(7.1), in(1.5), in(5.5), in(5.6))
	deck.AddPlainText(s, in(7.5), in(1.75), in(4.8), in(0.4), "Backend (Express + MySQL)")
	deck.AddBullets(s, in(7.5), in(2.15), in(4.8), in(4.8), []string{
		"Members + Relationships endpoints",
		"Relationship direction reversal per requester",
		"Cache-control to avoid stale data (304)",
		"DB constraints (ENUM) & normalization",
	})
	return nil
}

func outputsSlide(b *builder) error {
	s := b.newSlide("Observed Outputs", "What the app showed during debugging")

	if err := b.image(TreeFixed, 0.9, 1.6, 6.2, 4.9); err != nil {
		return err
	}
	if err := b.image(NetworkErrorBefore, 7.3, 1.6, 5.1, 4.9); err != nil {
		return err
	}

	deck.AddText(s, in(0.9), in(6.7), in(12.5), in(0.5),
		"Screenshots auto-embed from docs/ppt/images (placeholders shown if missing).", 12, false, deck.Muted)
	return nil
}

func challengesSlide(b *builder) error {
	s := b.newSlide("Challenges Encountered", "What broke and why it mattered")

	deck.AddCard(s, in(0.8), in(1.55), in(12.0), in(5.9))
	deck.AddBullets(s, in(1.2), in(1.95), in(11.2), in(5.4), []string{
		"Family tree rendered as a flat row (no hierarchy)",
		"Tree appeared upside down (descendants at top)",
		"No relationships persisted in DB → ‘Relationships found: 0’",
		"Endpoint inconsistency: /members vs /members/:id/relationships returned different semantics",
		"HTTP 304 caching caused stale relationship types on device",
		"Audio upload failing (‘Network request failed’)",
	})
	return nil
}

func rootCausesSlide(b *builder) error {
	s := b.newSlide("Root Causes", "What the debugging proved")

	deck.AddKPI(s, in(0.9), in(1.65), "Data correctness", "Relationships weren’t saved", deck.SuvarnaDark)
	deck.AddKPI(s, in(4.85), in(1.65), "Semantics", "Type reversal missing", deck.SuvarnaDark)
	deck.AddKPI(s, in(8.8), in(1.65), "Caching", "304 returned stale graph", deck.SuvarnaDark)

	deck.AddCard(s, in(0.8), in(2.8), in(12.0), in(4.7))
	deck.AddBullets(s, in(1.2), in(3.15), in(11.2), in(4.1), []string{
		"DB ENUM rejected detailed types like 'wife'/'son' → insert error, orphan members created",
		"getRelationships endpoint returned raw DB relationship_type (not reversed per requester)",
		"Client cached responses; UI used old relationship direction/type",
		"Tree can only be ‘dynamic’ if relationships are persisted + normalized and the graph is built from them",
	})
	return nil
}

func solutionsSlide(b *builder) error {
	s := b.newSlide("Solutions Implemented", "Fixes across frontend, backend, and DB")

	deck.AddCard(s, in(0.8), in(1.55), in(12.0), in(3.2))
	deck.AddBullets(s, in(1.2), in(1.9), in(11.2), in(2.9), []string{
		"Graph layout: BFS generation leveling (parents gen-1, children gen+1, spouse same gen)",
		"Backend: consistent relationship reversal in both endpoints",
		"Backend: Cache-Control headers to prevent stale 304 behavior",
		"Backend: map detailed relationship types → base ENUM; store detailed in relationship_subtype",
		"Frontend: audio upload fixed by not forcing multipart Content-Type (boundary required)",
	})

	if err := b.image(AudioUploadFixed, 0.9, 4.95, 6.2, 2.05); err != nil {
		return err
	}
	return b.image(SettingsSimplified, 7.3, 4.95, 5.1, 2.05)
}

func algorithmSlide(b *builder) error {
	s := b.newSlide("Tree Layout Algorithm", "Normalized graph → deterministic positioning")

	deck.AddCard(s, in(0.8), in(1.55), in(12.0), in(5.9))
	deck.AddBullets(s, in(1.2), in(1.95), in(11.2), in(5.3), []string{
		"Input: members + relationships (normalized: parent/child/spouse/sibling)",
		"Build adjacency lists for each node (parents, children, spouses)",
		"BFS from root: assign generations (Y levels) and normalize so minGen = 0",
		"Create spouse ‘family units’ and compute subtree widths bottom-up",
		"Assign X positions top-down using subtree widths (avoids overlap)",
		"Render orthogonal connectors (married + parent-child)",
	})
	return nil
}

func learningsSlide(b *builder) error {
	s := b.newSlide("Key Technical Learnings", "What this taught me (practical takeaways)")

	deck.AddCard(s, in(0.8), in(1.55), in(12.0), in(5.9))
	deck.AddBullets(s, in(1.2), in(1.95), in(11.2), in(5.3), []string{
		"Data model first: UI correctness depends on persisted relationship truth",
		"Normalize at the boundary: store base types + detailed subtype, not free-form strings",
		"API symmetry matters: all endpoints must agree on semantics",
		"Disable/handle caching during rapid iteration (304 can sabotage debugging)",
		"Multipart uploads: never hardcode boundary Content-Type in React Native",
		"Add logs where state transforms (DB → API → store → layout)",
	})
	return nil
}

func nextStepsSlide(b *builder) error {
	s := b.newSlide("Next Improvements", "To make this production-hard")

	deck.AddCard(s, in(0.8), in(1.55), in(12.0), in(5.9))
	deck.AddBullets(s, in(1.2), in(1.95), in(11.2), in(5.3), []string{
		"Validate relationship creation server-side (reject cycles if desired)",
		"Enforce uniqueness constraints per direction + subtype rules",
		"Add integration tests for relationship semantics + reversal",
		"Add optimistic UI updates after add-member + relationship POST",
		"Add retry/backoff + clearer upload error details (status/body logging)",
	})
	return nil
}
