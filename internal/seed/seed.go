package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/hochschule/internal/app/models"
	appRepos "github.com/yigit/hochschule/internal/app/repositories"
	"github.com/yigit/hochschule/internal/pkg/helpers"
)

// IsEmpty reports whether no lecturer, semester, course or student is stored
func IsEmpty(ctx context.Context, repos *appRepos.Repositories) (bool, error) {
	lecturers, err := repos.LecturerRepository.ListAll(ctx)
	if err != nil {
		return false, err
	}
	semesters, err := repos.SemesterRepository.ListAll(ctx)
	if err != nil {
		return false, err
	}
	courses, err := repos.CourseRepository.ListAll(ctx)
	if err != nil {
		return false, err
	}
	students, err := repos.StudentRepository.ListAll(ctx)
	if err != nil {
		return false, err
	}
	return len(lecturers)+len(semesters)+len(courses)+len(students) == 0, nil
}

// CreateDefaultData fills an empty store with two lecturers, two semesters,
// two courses and two students. A store that already holds data is left alone.
func CreateDefaultData(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	empty, err := IsEmpty(ctx, repos)
	if err != nil {
		return fmt.Errorf("failed to inspect store before seeding: %w", err)
	}
	if !empty {
		lgr.Info().Msg("Store already contains data, skipping seed")
		return nil
	}

	lgr.Info().Msg("Creating default data (Lecturers/Semesters/Courses/Students)...")
	var finalErr error

	// --- Lecturers --- //
	schmidt, err := repos.LecturerRepository.Create(ctx, &appModels.Lecturer{
		Surname:   "Schmidt",
		Name:      "Hans",
		Address:   "Hauptstraße 1, 10115 Berlin",
		Birthdate: helpers.MustDate(1970, time.March, 12),
		Degree:    appModels.DegreeProfessor,
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating lecturer Schmidt")
		return err
	}
	mueller, err := repos.LecturerRepository.Create(ctx, &appModels.Lecturer{
		Surname:   "Müller",
		Name:      "Anna",
		Address:   "Bahnhofstraße 5, 80335 München",
		Birthdate: helpers.MustDate(1975, time.July, 3),
		Degree:    appModels.DegreeProfessor,
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating lecturer Müller")
		return err
	}

	// --- Semesters --- //
	winter, err := repos.SemesterRepository.Create(ctx, &appModels.Semester{
		Name:      "Wintersemester 2024/2025",
		StartDate: helpers.MustDate(2024, time.October, 1),
		EndDate:   helpers.MustDate(2025, time.March, 31),
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating winter semester")
		return err
	}
	if _, err := repos.SemesterRepository.Create(ctx, &appModels.Semester{
		Name:      "Sommersemester 2025",
		StartDate: helpers.MustDate(2025, time.April, 1),
		EndDate:   helpers.MustDate(2025, time.September, 30),
	}); err != nil {
		lgr.Error().Err(err).Msg("Error creating summer semester")
		finalErr = errors.Join(finalErr, err)
	}

	// --- Courses --- //
	softwareEngineering, err := repos.CourseRepository.Create(ctx, &appModels.Course{
		Name:        "Software Engineering",
		Description: "Grundlagen der Softwareentwicklung",
		Startdate:   helpers.MustDate(2024, time.October, 1),
		Enddate:     helpers.MustDate(2025, time.February, 28),
		LecturerID:  &schmidt.ID,
		Semesters:   []*appModels.Semester{winter},
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating course Software Engineering")
		return err
	}
	databases, err := repos.CourseRepository.Create(ctx, &appModels.Course{
		Name:        "Datenbanken",
		Description: "Datenbankkonzepte und SQL",
		Startdate:   helpers.MustDate(2024, time.October, 15),
		Enddate:     helpers.MustDate(2025, time.January, 31),
		LecturerID:  &mueller.ID,
		Semesters:   []*appModels.Semester{winter},
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating course Datenbanken")
		return err
	}

	// --- Students --- //
	if _, err := repos.StudentRepository.Create(ctx, &appModels.Student{
		Surname:    "Mustermann",
		Name:       "Max",
		Address:    "Musterweg 1, 12345 Musterstadt",
		Birthdate:  helpers.MustDate(2000, time.January, 15),
		SemesterID: &winter.ID,
		Courses:    []*appModels.Course{softwareEngineering, databases},
	}); err != nil {
		lgr.Error().Err(err).Msg("Error creating student Max Mustermann")
		finalErr = errors.Join(finalErr, err)
	}
	if _, err := repos.StudentRepository.Create(ctx, &appModels.Student{
		Surname:    "Musterfrau",
		Name:       "Erika",
		Address:    "Beispielstraße 2, 12345 Musterstadt",
		Birthdate:  helpers.MustDate(2001, time.May, 8),
		SemesterID: &winter.ID,
		Courses:    []*appModels.Course{softwareEngineering},
	}); err != nil {
		lgr.Error().Err(err).Msg("Error creating student Erika Musterfrau")
		finalErr = errors.Join(finalErr, err)
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data created")
	}
	return finalErr
}
