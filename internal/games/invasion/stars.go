package invasion

// newStarField places one star at a random point inside each grid region.
func (g *Game) newStarField() []Star {
	region := g.cfg.Particles.StarRegion
	var stars []Star
	for rx := 0.0; rx < ScreenWidth/region; rx++ {
		for ry := 0.0; ry < ScreenHeight/region; ry++ {
			stars = append(stars, Star{
				X: rx*region + g.rng.Float64()*region,
				Y: ry*region + g.rng.Float64()*region,
			})
		}
	}
	return stars
}

// updateStars scrolls the field upward, wrapping at the top.
func (g *Game) updateStars() {
	for i := range g.stars {
		g.stars[i].Y -= g.cfg.Particles.StarScroll
		if g.stars[i].Y < 0 {
			g.stars[i].Y = ScreenHeight
		}
	}
}
