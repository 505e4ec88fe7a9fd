package console

import (
	"fmt"

	"gorm.io/datatypes"

	"github.com/mrlokans/gamesreviewer/internal/entities"
)

const (
	maxStorageGB = 500
	maxRAMGB     = 128
)

func (s *Shell) requirementsMenu() error {
	return s.menu("SYSTEM REQUIREMENTS", "Back to main menu", []menuItem{
		{"List all requirement profiles", s.listRequirements},
		{"List requirements for a game", s.listGameRequirements},
		{"Find a profile by ID", s.findRequirement},
		{"Add requirement profiles to a game", s.createRequirement},
		{"Edit a profile", s.editRequirement},
		{"Delete a profile", s.deleteRequirement},
	})
}

func (s *Shell) listRequirements() error {
	s.subHeader("All system requirements")
	reqs, err := s.catalog.Requirements.GetAllRequirements()
	if err != nil {
		s.report("list system requirements", err)
		return nil
	}
	s.printRequirements(reqs)
	return nil
}

func (s *Shell) listGameRequirements() error {
	s.subHeader("System requirements for a game")
	gameID, err := s.prompt.ReadID("Game ID: ")
	if err != nil {
		return err
	}
	reqs, err := s.catalog.Requirements.GetRequirementsByGameID(gameID)
	if err != nil {
		s.report("list system requirements", err)
		return nil
	}
	s.printRequirements(reqs)
	return nil
}

func (s *Shell) printRequirements(reqs []entities.SystemRequirement) {
	if len(reqs) == 0 {
		s.warning("No system requirements found.")
		return
	}
	rows := make([][]string, 0, len(reqs))
	for _, r := range reqs {
		rows = append(rows, []string{
			fmtID(r.ID),
			truncate(nullString(r.GameTitle), 25),
			nullString(r.RequirementType),
			fmt.Sprint(r.StorageGB),
			fmt.Sprint(r.RAMGB),
			nullFloat(r.CPUGHz),
			nullFloat(r.GPUTflops),
			nullInt(r.VRAMGB),
		})
	}
	s.renderTable([]string{"ID", "Game", "Tier", "Storage GB", "RAM GB", "CPU GHz", "GPU TFLOPS", "VRAM GB"}, rows)
	s.info("Total profiles: %d", len(reqs))
}

func (s *Shell) printRequirementProfile(r entities.SystemRequirement) {
	fmt.Fprintf(s.out, "\n  Profile: %s\n", nullString(r.RequirementType))
	fmt.Fprintf(s.out, "  Storage: %d GB\n", r.StorageGB)
	fmt.Fprintf(s.out, "  RAM: %d GB\n", r.RAMGB)
	if r.CPUGHz.Valid {
		fmt.Fprintf(s.out, "  CPU: %s GHz\n", nullFloat(r.CPUGHz))
	}
	if r.GPUTflops.Valid {
		fmt.Fprintf(s.out, "  GPU: %s TFLOPS\n", nullFloat(r.GPUTflops))
	}
	if r.VRAMGB.Valid {
		fmt.Fprintf(s.out, "  VRAM: %d GB\n", r.VRAMGB.V)
	}
}

func (s *Shell) findRequirement() error {
	reqID, err := s.prompt.ReadID("Profile ID: ")
	if err != nil {
		return err
	}
	req, ok, err := s.catalog.Requirements.GetRequirementByID(reqID)
	if err != nil {
		s.report("load the profile", err)
		return nil
	}
	if !ok {
		s.notFound("Requirement profile", reqID)
		return nil
	}
	s.header("System requirements of " + nullString(req.GameTitle))
	s.field("ID", fmtID(req.ID))
	s.printRequirementProfile(req)
	s.separator()
	return nil
}

func (s *Shell) createRequirement() error {
	s.subHeader("Add requirement profiles")
	gameID, err := s.prompt.ReadID("Game ID: ")
	if err != nil {
		return err
	}
	if _, ok, err := s.catalog.Games.GetGameByID(gameID); err != nil {
		s.report("load the game", err)
		return nil
	} else if !ok {
		s.notFound("Game", gameID)
		return nil
	}
	return s.addRequirementProfiles(gameID)
}

// addRequirementProfiles keeps adding tiers until the operator picks 0 or
// declines another one.
func (s *Shell) addRequirementProfiles(gameID int64) error {
	tiers, err := s.catalog.RequirementTypes.GetAllRequirementTypes()
	if err != nil {
		s.report("list requirement tiers", err)
		return nil
	}
	if len(tiers) == 0 {
		s.warning("There are no requirement tiers.")
		return nil
	}

	for {
		fmt.Fprintln(s.out, "\nRequirement tiers:")
		for i, t := range tiers {
			fmt.Fprintf(s.out, "%d. %s\n", i+1, t.Name)
		}
		fmt.Fprintln(s.out, "0. Done")

		choice, err := s.prompt.ReadInt("\nTier: ", 0, int64(len(tiers)))
		if err != nil {
			return err
		}
		if choice == 0 {
			return nil
		}

		storage, err := s.prompt.ReadInt("Storage (GB): ", 1, maxStorageGB)
		if err != nil {
			return err
		}
		ram, err := s.prompt.ReadInt("RAM (GB): ", 1, maxRAMGB)
		if err != nil {
			return err
		}
		cpu, gpu, vram, err := s.readHardware("Enter to skip")
		if err != nil {
			return err
		}

		req, err := entities.NewSystemRequirement(gameID, tiers[choice-1].ID, int(storage), int(ram), cpu, gpu, vram)
		if err != nil {
			s.report("add the profile", err)
		} else if _, err := s.catalog.Requirements.CreateRequirement(req); err != nil {
			s.report("add the profile", err)
		} else {
			s.success("%s profile added.", tiers[choice-1].Name)
		}

		more, err := s.prompt.ReadYesNo("\nAdd another profile?")
		if err != nil || !more {
			return err
		}
	}
}

func (s *Shell) readHardware(hint string) (cpu, gpu datatypes.Null[float64], vram datatypes.Null[int64], err error) {
	if cpu, err = s.prompt.ReadOptionalFloat("CPU (GHz, " + hint + "): "); err != nil {
		return
	}
	if gpu, err = s.prompt.ReadOptionalFloat("GPU (TFLOPS, " + hint + "): "); err != nil {
		return
	}
	vram, err = s.prompt.ReadOptionalInt("VRAM (GB, "+hint+"): ", 0, maxRAMGB)
	return
}

// editRequirement changes the hardware values only; game and tier stay.
func (s *Shell) editRequirement() error {
	s.subHeader("Edit a requirement profile")
	reqID, err := s.prompt.ReadID("Profile ID: ")
	if err != nil {
		return err
	}
	req, ok, err := s.catalog.Requirements.GetRequirementByID(reqID)
	if err != nil {
		s.report("load the profile", err)
		return nil
	}
	if !ok {
		s.notFound("Requirement profile", reqID)
		return nil
	}
	fmt.Fprintf(s.out, "\nCurrent values for %s:\n", nullString(req.GameTitle))
	s.printRequirementProfile(req)
	fmt.Fprintln(s.out, "\nLeave a field empty to keep its value.")

	storage, err := s.prompt.ReadOptionalInt("New storage (GB): ", 1, maxStorageGB)
	if err != nil {
		return err
	}
	ram, err := s.prompt.ReadOptionalInt("New RAM (GB): ", 1, maxRAMGB)
	if err != nil {
		return err
	}
	cpu, gpu, vram, err := s.readHardware("Enter to keep")
	if err != nil {
		return err
	}

	updated, err := entities.NewSystemRequirement(
		req.GameID,
		req.TypeID,
		int(keepInt(storage, datatypes.NewNull(int64(req.StorageGB))).V),
		int(keepInt(ram, datatypes.NewNull(int64(req.RAMGB))).V),
		keepFloat(cpu, req.CPUGHz),
		keepFloat(gpu, req.GPUTflops),
		keepInt(vram, req.VRAMGB),
	)
	if err != nil {
		s.report("update the profile", err)
		return nil
	}
	if err := s.catalog.Requirements.UpdateRequirement(updated.WithID(reqID)); err != nil {
		s.report("update the profile", err)
		return nil
	}
	s.success("Requirement profile updated.")
	return nil
}

func (s *Shell) deleteRequirement() error {
	s.subHeader("Delete a requirement profile")
	reqID, err := s.prompt.ReadID("Profile ID: ")
	if err != nil {
		return err
	}
	req, ok, err := s.catalog.Requirements.GetRequirementByID(reqID)
	if err != nil {
		s.report("load the profile", err)
		return nil
	}
	if !ok {
		s.notFound("Requirement profile", reqID)
		return nil
	}
	what := fmt.Sprintf("the %s profile of %s", nullString(req.RequirementType), nullString(req.GameTitle))
	confirmed, err := s.confirm(what)
	if err != nil || !confirmed {
		return err
	}
	if err := s.catalog.Requirements.DeleteRequirement(reqID); err != nil {
		s.report("delete the profile", err)
		return nil
	}
	s.success("Requirement profile deleted.")
	return nil
}
