package corpus

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/atelier-modern/archivesearch/internal/domain"
	"github.com/atelier-modern/archivesearch/internal/domain/content"
)

// Corpus file names expected under the corpus directory.
const (
	worksFile     = "works.yaml"
	scholarsFile  = "scholars.yaml"
	biographyFile = "biography.yaml"
)

type workFile struct {
	Works []workDTO `yaml:"works"`
}

type workDTO struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Category    string `yaml:"category"`
	Location    string `yaml:"location"`
	Year        int    `yaml:"year"`
	Status      string `yaml:"status"`
	Description string `yaml:"description"`
}

type scholarFile struct {
	Scholars []scholarDTO `yaml:"scholars"`
}

type scholarDTO struct {
	ID              string           `yaml:"id"`
	Name            string           `yaml:"name"`
	Institution     string           `yaml:"institution"`
	Region          string           `yaml:"region"`
	Specializations []string         `yaml:"specializations"`
	Biography       string           `yaml:"biography"`
	Publications    []publicationDTO `yaml:"publications"`
	Email           *string          `yaml:"email"`
	Website         *string          `yaml:"website"`
}

type publicationDTO struct {
	Title    string   `yaml:"title"`
	Abstract string   `yaml:"abstract"`
	Year     int      `yaml:"year"`
	Keywords []string `yaml:"keywords"`
}

type biographyDataFile struct {
	Facts []biographyFactDTO `yaml:"facts"`
}

type biographyFactDTO struct {
	ID        string `yaml:"id"`
	Section   string `yaml:"section"`
	Title     string `yaml:"title"`
	Text      string `yaml:"text"`
	Year      int    `yaml:"year"`
	BirthYear int    `yaml:"birth_year"`
}

// Load reads the three corpus files from dir and builds the immutable
// snapshot. Missing files are treated as empty corpora so partial archives
// still serve.
func Load(dir string) (*Snapshot, error) {
	works, err := loadWorks(filepath.Join(dir, worksFile))
	if err != nil {
		return nil, err
	}
	scholars, err := loadScholars(filepath.Join(dir, scholarsFile))
	if err != nil {
		return nil, err
	}
	facts, err := loadBiography(filepath.Join(dir, biographyFile))
	if err != nil {
		return nil, err
	}
	snap, err := NewSnapshot(works, scholars, facts)
	if err != nil {
		return nil, fmt.Errorf("build corpus snapshot: %w", err)
	}
	return snap, nil
}

func readYAML(path string, out any) (bool, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read corpus file %s: %w: %w", path, domain.ErrCorpusUnavailable, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("parse corpus file %s: %w: %w", path, domain.ErrCorpusUnavailable, err)
	}
	return true, nil
}

func loadWorks(path string) ([]content.WorkRecord, error) {
	var file workFile
	ok, err := readYAML(path, &file)
	if err != nil || !ok {
		return nil, err
	}
	works := make([]content.WorkRecord, 0, len(file.Works))
	for _, dto := range file.Works {
		w, err := content.NewWork(dto.ID, dto.Title, dto.Category, dto.Location, dto.Year, dto.Status, dto.Description)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %w", path, domain.ErrInvalidRecord, err)
		}
		works = append(works, w)
	}
	return works, nil
}

func loadScholars(path string) ([]content.ScholarRecord, error) {
	var file scholarFile
	ok, err := readYAML(path, &file)
	if err != nil || !ok {
		return nil, err
	}
	scholars := make([]content.ScholarRecord, 0, len(file.Scholars))
	for _, dto := range file.Scholars {
		pubs := make([]content.Publication, 0, len(dto.Publications))
		for _, p := range dto.Publications {
			pub, err := content.NewPublication(p.Title, p.Abstract, p.Year, p.Keywords)
			if err != nil {
				return nil, fmt.Errorf("%s: scholar %q: %w: %w", path, dto.ID, domain.ErrInvalidRecord, err)
			}
			pubs = append(pubs, pub)
		}
		params := content.ScholarParams{
			ID:              dto.ID,
			Name:            dto.Name,
			Institution:     dto.Institution,
			Region:          dto.Region,
			Specializations: dto.Specializations,
			Biography:       dto.Biography,
			Publications:    pubs,
			Email:           optionalString(dto.Email),
			Website:         optionalString(dto.Website),
		}
		s, err := content.NewScholar(params)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %w", path, domain.ErrInvalidRecord, err)
		}
		scholars = append(scholars, s)
	}
	return scholars, nil
}

func loadBiography(path string) ([]content.BiographyFact, error) {
	var file biographyDataFile
	ok, err := readYAML(path, &file)
	if err != nil || !ok {
		return nil, err
	}
	facts := make([]content.BiographyFact, 0, len(file.Facts))
	for _, dto := range file.Facts {
		f, err := content.NewBiographyFact(dto.ID, dto.Section, dto.Title, dto.Text, dto.Year, dto.BirthYear)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %w", path, domain.ErrInvalidRecord, err)
		}
		facts = append(facts, f)
	}
	return facts, nil
}

func optionalString(s *string) content.Optional[string] {
	if s == nil || *s == "" {
		return content.None[string]()
	}
	return content.Some(*s)
}
