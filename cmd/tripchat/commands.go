package main

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"tripchat/destinations"
	"tripchat/favorites"
	"tripchat/flights"
	"tripchat/session"
	"tripchat/tui"
)

type PlanCmd struct{}

func (c *PlanCmd) Run(ctx *Context) error {
	form := session.New(ctx.Now)

	fields := &tui.TripFields{}
	if err := tui.NewTripForm(fields).Run(); err != nil {
		return err
	}
	fields.Apply(form)

	if err := pickDates(form, ctx); err != nil {
		return err
	}
	return send(ctx, form)
}

type SearchCmd struct {
	Destination string   `arg:"" help:"City or IATA code."`
	Dates       string   `help:"Dates as M/D/YYYY - M/D/YYYY or YYYY-MM-DD to YYYY-MM-DD." required:""`
	Budget      string   `help:"Budget bracket such as 1000-2000, or 5000+ for no limit." default:"5000+"`
	Transport   string   `help:"Transport mode." enum:"Flight,Train,Car,Bus" default:"Flight"`
	Interests   []string `help:"Interests for the itinerary."`
	Message     string   `help:"Message sent with the search." default:"Find me flights"`
}

func (c *SearchCmd) Run(ctx *Context) error {
	form := session.New(ctx.Now)
	form.Destination = c.Destination
	form.Dates.SetValue(c.Dates)
	form.Budget = c.Budget
	form.Transport = c.Transport
	form.Message = c.Message
	form.SetInterests(c.Interests)
	return send(ctx, form)
}

type PickCmd struct{}

func (c *PickCmd) Run(ctx *Context) error {
	form := session.New(ctx.Now)
	if err := pickDates(form, ctx); err != nil {
		return err
	}
	fmt.Fprintln(ctx.Out, form.DateText())
	return nil
}

type DestinationsCmd struct {
	City string `arg:"" optional:"" help:"Show attractions, food and sightseeing for this city."`
}

func (c *DestinationsCmd) Run(ctx *Context) error {
	if c.City != "" {
		name := c.City
		if city, ok := destinations.Lookup(c.City); ok {
			name = city.Name
		}
		d := destinations.DetailsFor(name)
		fmt.Fprintf(ctx.Out, "%s\n\nAttractions:\n  %s\nFood:\n  %s\nSightseeing:\n  %s\n", name,
			strings.Join(d.Attractions, "\n  "),
			strings.Join(d.Food, "\n  "),
			strings.Join(d.Sightseeing, "\n  "))
		return nil
	}

	favs, err := ctx.Favorites.Load(ctx.Ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.Out, tui.RenderDestinations(destinations.Sorted(favs)))
	return nil
}

type FavoriteCmd struct {
	City string `arg:"" help:"Destination to toggle."`
}

func (c *FavoriteCmd) Run(ctx *Context) error {
	city, ok := destinations.Lookup(c.City)
	if !ok {
		return fmt.Errorf("unknown destination %q", c.City)
	}
	_, on, err := favorites.Toggle(ctx.Ctx, ctx.Favorites, city.Name)
	if err != nil {
		return err
	}
	if on {
		fmt.Fprintf(ctx.Out, "♥ %s added to favorites\n", city.Name)
	} else {
		fmt.Fprintf(ctx.Out, "%s removed from favorites\n", city.Name)
	}
	return nil
}

func pickDates(form *session.Form, ctx *Context) error {
	final, err := tea.NewProgram(tui.NewCalendar(form.Dates, ctx.Now)).Run()
	if err != nil {
		return err
	}
	if cal, ok := final.(tui.CalendarModel); ok && cal.Canceled() && form.DateText() == "" {
		return errors.New("no dates picked")
	}
	return nil
}

// send validates the form, prints the itinerary and runs the flight search.
func send(ctx *Context, form *session.Form) error {
	switch err := form.Validate(); {
	case errors.Is(err, session.ErrEmptyMessage):
		return nil
	case errors.Is(err, session.ErrMissingFields):
		fmt.Fprintln(ctx.Out, session.MissingFieldsAlert)
		return nil
	case err != nil:
		return err
	}

	fmt.Fprintln(ctx.Out, form.Itinerary())
	fmt.Fprintln(ctx.Out)

	req, warnings := form.Payload()
	for _, w := range warnings {
		fmt.Fprintf(ctx.Out, "⚠️  %v\n", w)
	}

	resp, err := ctx.Client.Search(ctx.Ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.Out, tui.RenderSummary(flights.Summarize(resp)))
	return nil
}
