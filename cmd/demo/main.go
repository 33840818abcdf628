// The demo command exercises each logistics variant in turn and prints the
// transport instructions it produces. It needs no database or configuration,
// making it a quick smoke check of the planning core.
package main

import (
	"fmt"
	"io"
	"os"

	"logistics/internal/core/domain/model/logistics"

	"github.com/labstack/gommon/log"
)

func main() {
	if err := run(os.Stdout); err != nil {
		log.Fatalf("Demo failed: %v", err)
	}
}

func run(w io.Writer) error {
	road, err := logistics.New(logistics.Road)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "App: Launched with RoadLogistics.")
	if err := planAndPrint(w, road); err != nil {
		return err
	}

	sea, err := logistics.New(logistics.Sea)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "\nApp: Launched with SeaLogistics.")
	return planAndPrint(w, sea)
}

func planAndPrint(w io.Writer, l logistics.Logistics) error {
	instructions, err := logistics.PlanDelivery(l)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, instructions)
	return nil
}
