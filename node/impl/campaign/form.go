package campaign

import (
	"io"
	"sync"

	"golang.org/x/xerrors"
)

type Stage int

const (
	StageIdle Stage = iota
	StageFileLoading
	StageSubmitting
	StageSucceeded
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageFileLoading:
		return "file-loading"
	case StageSubmitting:
		return "submitting"
	case StageSucceeded:
		return "succeeded"
	case StageFailed:
		return "failed"
	default:
		return "unknown"
	}
}

func (s Stage) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Stage) UnmarshalText(b []byte) error {
	switch string(b) {
	case "idle":
		*s = StageIdle
	case "file-loading":
		*s = StageFileLoading
	case "submitting":
		*s = StageSubmitting
	case "succeeded":
		*s = StageSucceeded
	case "failed":
		*s = StageFailed
	default:
		return xerrors.Errorf("unknown stage %q", string(b))
	}
	return nil
}

// Form is the transient state behind the submission form. It lives as long
// as the process and is never persisted.
type Form struct {
	lk sync.Mutex

	file     []byte
	fileName string
	title    string
	goal     string

	lastContentID string
	stage         Stage
	message       string
}

// Snapshot is a copy of the form state safe to hand out.
type Snapshot struct {
	Title     string
	Goal      string
	FileName  string
	FileSize  int
	ContentID string
	Stage     Stage
	Message   string
}

func NewForm() *Form {
	return &Form{}
}

// LoadFile reads r to completion and makes it the selected file. The previous
// file stays selected if reading fails.
func (f *Form) LoadFile(name string, r io.Reader) ([]byte, error) {
	f.setStage(StageFileLoading)

	data, err := io.ReadAll(r)
	if err != nil {
		err = &FileError{Err: err}
		f.finish(StageFailed, UserMessage(err))
		return nil, err
	}

	f.lk.Lock()
	f.file = data
	f.fileName = name
	f.stage = StageIdle
	f.lk.Unlock()

	return data, nil
}

func (f *Form) SetTitle(title string) {
	f.lk.Lock()
	defer f.lk.Unlock()
	f.title = title
}

func (f *Form) SetGoal(goal string) {
	f.lk.Lock()
	defer f.lk.Unlock()
	f.goal = goal
}

// File returns the selected file, nil when none was loaded.
func (f *Form) File() (name string, data []byte) {
	f.lk.Lock()
	defer f.lk.Unlock()
	return f.fileName, f.file
}

// LastContentID is the identifier of the most recently stored file. It
// survives failures of later steps.
func (f *Form) LastContentID() string {
	f.lk.Lock()
	defer f.lk.Unlock()
	return f.lastContentID
}

func (f *Form) Snapshot() Snapshot {
	f.lk.Lock()
	defer f.lk.Unlock()

	return Snapshot{
		Title:     f.title,
		Goal:      f.goal,
		FileName:  f.fileName,
		FileSize:  len(f.file),
		ContentID: f.lastContentID,
		Stage:     f.stage,
		Message:   f.message,
	}
}

func (f *Form) setContentID(c string) {
	f.lk.Lock()
	defer f.lk.Unlock()
	f.lastContentID = c
}

func (f *Form) setStage(s Stage) {
	f.lk.Lock()
	defer f.lk.Unlock()
	f.stage = s
}

func (f *Form) finish(s Stage, msg string) {
	f.lk.Lock()
	defer f.lk.Unlock()
	f.stage = s
	f.message = msg
}
