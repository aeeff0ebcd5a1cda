// Package shell is the interactive console for the parking attendant.
package shell

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"parking-system/internal/domain/parking"
	"parking-system/internal/pkg/errs"
	"parking-system/internal/usecase/commands"

	"github.com/fatih/color"
)

const (
	optionEntry    = 1
	optionExit     = 2
	optionShutdown = 3
)

const timeLayout = "2006-01-02 15:04:05"

type Shell struct {
	parking commands.ParkingCommands
	in      *InputReader
	out     io.Writer
	logger  *slog.Logger

	info    *color.Color
	success *color.Color
	failure *color.Color
}

func New(parking commands.ParkingCommands, in *InputReader, out io.Writer, logger *slog.Logger) *Shell {
	return &Shell{
		parking: parking,
		in:      in,
		out:     out,
		logger:  logger,
		info:    color.New(color.FgCyan),
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
	}
}

// Run loops over the menu until the operator shuts down or the input ends.
func (s *Shell) Run(ctx context.Context) error {
	s.logger.Info("parking shell started")
	s.info.Fprintln(s.out, "Welcome to Parking System!")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.displayMenu()
		option, err := s.in.ReadSelection()
		switch {
		case errs.Is(err, io.EOF):
			s.logger.Info("parking shell input closed")
			return nil
		case errs.Is(err, ErrInvalidSelection):
			s.failure.Fprintln(s.out, "Invalid input. Please enter a valid number.")
			continue
		case err != nil:
			return err
		}

		switch option {
		case optionEntry:
			s.handleEntry(ctx)
		case optionExit:
			s.handleExit(ctx)
		case optionShutdown:
			s.info.Fprintln(s.out, "Exiting from the system!")
			return nil
		default:
			s.failure.Fprintln(s.out, "Unsupported option. Please enter a number corresponding to the provided menu.")
		}
	}
}

func (s *Shell) displayMenu() {
	fmt.Fprintln(s.out, "Please select an option. Simply enter the number to choose an action:")
	fmt.Fprintln(s.out, "1. New Vehicle Entering - Allocate Parking Space")
	fmt.Fprintln(s.out, "2. Vehicle Exiting - Generate Ticket Price")
	fmt.Fprintln(s.out, "3. Shutdown System")
}

func (s *Shell) handleEntry(ctx context.Context) {
	t, err := s.readParkingType()
	if err != nil {
		s.reportError("incoming", err)
		return
	}
	reg, err := s.readRegistration()
	if err != nil {
		s.reportError("incoming", err)
		return
	}

	ticket, err := s.parking.ProcessEntry(ctx, reg, t)
	if err != nil {
		s.reportError("incoming", err)
		return
	}

	s.success.Fprintln(s.out, "Generated Ticket and saved in DB")
	s.success.Fprintf(s.out, "Please park your vehicle in spot number: %d\n", ticket.Spot().ID())
	s.success.Fprintf(s.out, "Recorded in-time for vehicle number: %s is: %s\n",
		ticket.VehicleRegNumber(), ticket.InTime().Format(timeLayout))
}

func (s *Shell) handleExit(ctx context.Context) {
	reg, err := s.readRegistration()
	if err != nil {
		s.reportError("exiting", err)
		return
	}

	ticket, err := s.parking.ProcessExit(ctx, reg)
	if err != nil {
		s.reportError("exiting", err)
		return
	}

	s.success.Fprintf(s.out, "Please pay the parking fare: %.2f\n", ticket.Price())
	if out := ticket.OutTime(); out != nil {
		s.success.Fprintf(s.out, "Recorded out-time for vehicle number: %s is: %s\n",
			ticket.VehicleRegNumber(), out.Format(timeLayout))
	}
}

func (s *Shell) readParkingType() (parking.ParkingType, error) {
	fmt.Fprintln(s.out, "Please select vehicle type:")
	fmt.Fprintln(s.out, "1. CAR")
	fmt.Fprintln(s.out, "2. BIKE")

	n, err := s.in.ReadSelection()
	if err != nil {
		return "", err
	}
	switch n {
	case 1:
		return parking.TypeCar, nil
	case 2:
		return parking.TypeBike, nil
	default:
		return "", errs.MarkWithMessage(parking.ErrUnsupportedParkingType, "unsupported vehicle type %d", n)
	}
}

func (s *Shell) readRegistration() (string, error) {
	fmt.Fprintln(s.out, "Please type the vehicle registration number and press enter key:")
	return s.in.ReadRegistration()
}

func (s *Shell) reportError(direction string, err error) {
	s.logger.Warn("parking shell operation failed", "direction", direction, "error", err.Error())
	s.failure.Fprintf(s.out, "An error occurred while processing the %s vehicle: %s\n", direction, err.Error())
}
