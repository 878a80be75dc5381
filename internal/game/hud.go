package game

import "fmt"

// RenderHUD draws all UI text for the current phase using the font atlas.
func RenderHUD(r *Renderer, s *Session, hs *Hiscore, last *RunSummary, fbW, fbH int) {
	white := RGB{R: 255, G: 255, B: 255}
	yellow := RGB{R: 255, G: 210, B: 60}
	red := RGB{R: 255, G: 80, B: 80}
	grey := RGB{R: 170, G: 170, B: 180}

	switch s.Phase {
	case PhaseIdle:
		title := "SCURRY!"
		titleScale := float32(3.0)
		r.DrawString(title, fbW/2-TextWidth(title, titleScale)/2, fbH/2-80, titleScale, yellow)

		msg := "Press SPACE to Start"
		msgScale := float32(1.0)
		r.DrawString(msg, fbW/2-TextWidth(msg, msgScale)/2, fbH/2+20, msgScale, white)

		hint := "Grab the cheese, stay off the cat's menu"
		hintScale := float32(0.65)
		r.DrawString(hint, fbW/2-TextWidth(hint, hintScale)/2, fbH/2+55, hintScale, grey)

		if hs.Best() > 0 {
			bestStr := fmt.Sprintf("Best: %d", hs.Best())
			r.DrawString(bestStr, fbW/2-TextWidth(bestStr, 0.75)/2, fbH/2+95, 0.75, yellow)
		}

	case PhaseRunning:
		scale := float32(0.85)

		scoreStr := fmt.Sprintf("Score: %d", s.World.DisplayScore())
		r.DrawString(scoreStr, 8, 8, scale, white)

		cheeseStr := fmt.Sprintf("Cheese: %d", s.World.CheeseEaten)
		r.DrawString(cheeseStr, fbW/2-TextWidth(cheeseStr, scale)/2, 8, scale, yellow)

		if hs.Best() > 0 {
			bestStr := fmt.Sprintf("Best: %d", hs.Best())
			r.DrawString(bestStr, fbW-TextWidth(bestStr, scale)-8, 8, scale, grey)
		}

	case PhaseGameOver:
		msg1 := "GAME OVER"
		r.DrawString(msg1, fbW/2-TextWidth(msg1, 2.0)/2, fbH/2-90, 2.0, red)

		if last != nil {
			cause := "The cat got you"
			if last.Cause == CauseSuspend {
				cause = "Run suspended"
			}
			r.DrawString(cause, fbW/2-TextWidth(cause, 0.75)/2, fbH/2-35, 0.75, grey)

			msg2 := fmt.Sprintf("Score: %d   Cheese: %d", last.Score, last.Cheese)
			r.DrawString(msg2, fbW/2-TextWidth(msg2, 0.9)/2, fbH/2+5, 0.9, yellow)

			if last.Score > 0 && last.Score == hs.Best() {
				nb := "NEW BEST!"
				r.DrawString(nb, fbW/2-TextWidth(nb, 1.1)/2, fbH/2+45, 1.1, yellow)
			} else if hs.Best() > 0 {
				bestStr := fmt.Sprintf("Best: %d", hs.Best())
				r.DrawString(bestStr, fbW/2-TextWidth(bestStr, 0.75)/2, fbH/2+45, 0.75, white)
			}
		}

		msg3 := "Press SPACE to retry"
		r.DrawString(msg3, fbW/2-TextWidth(msg3, 0.75)/2, fbH/2+90, 0.75, white)
	}

	r.FlushText(fbW, fbH)
}
