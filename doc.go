// Package approach animates element styles by pointer proximity.
//
// As the pointer moves, every registered element interpolates its target
// properties between their current values and the requested ones, according
// to how close the pointer is to the element's center. At the configured
// distance (400 pixels by default) and beyond, elements rest at their
// starting values; at the center they reach the target.
//
// # Quick start
//
// A [Stage] is a ready-made host holding [Box] elements:
//
//	stage := approach.NewStage()
//	box := approach.NewBox("card", 200, 150, 80, 80)
//	box.SetStyle("background-color", "navy")
//	stage.Add(box)
//
//	decls, _ := approach.ParseDeclarations("width: 120px; background-color: #ff0")
//	sess, err := approach.Approach(stage, stage.Elements(), decls, approach.Config{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer sess.Close()
//
//	approach.Run(stage, approach.RunConfig{Title: "approach", Width: 640, Height: 480})
//
// Any other UI can act as a host by implementing [Host].
//
// # Descriptors
//
// At registration each property becomes a [StyleDescriptor]. Numbers keep
// their unit ("10px", "+=5em"); background, border, text and outline colors
// become RGB triples when the host reports [Animator.ColorAnimation]. Values
// that cannot be parsed are dropped without error so the remaining
// properties still animate.
//
// # Sampling
//
// Pointer samples closer together than [Config.Interval] are discarded. Each
// processed sample hands the host one [Frame] per element, to be reached over
// the interval minus one millisecond.
//
// # Scripts
//
// [LoadScript] reads a JSON list of pointer moves, paths, waits and
// screenshots. Attached with [Stage.SetScript], it replays one step per
// Update, which makes runs reproducible without a mouse.
package approach
