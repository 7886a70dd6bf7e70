// Package campaign implements campaign submission: store the file on the
// storage node, name it in the node's file system, then register the campaign
// on chain and wait for confirmation.
package campaign

import (
	"bytes"
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	logging "github.com/ipfs/go-log/v2"
	"go.opencensus.io/stats"
	"golang.org/x/xerrors"

	"github.com/Borja291/Blockchain/chain/types"
	"github.com/Borja291/Blockchain/metrics"
	"github.com/Borja291/Blockchain/storage/ipfs"
)

var log = logging.Logger("campaign")

// Input is one submission of the form.
type Input struct {
	Title    string
	Goal     string
	FileName string
	File     []byte
}

// Result describes what a submission achieved. It is returned even when the
// submission fails and then carries whatever was learned before the failure.
type Result struct {
	ID          uuid.UUID
	ContentID   string
	GatewayURL  string
	TxHash      common.Hash
	BlockNumber uint64
	Started     time.Time
	Finished    time.Time
}

type Config struct {
	// GatewayAddress is the base of the links built for stored files.
	GatewayAddress string
	// PinFailureIsFatal aborts a submission when the mfs copy fails.
	PinFailureIsFatal bool
	// ConfirmTimeout bounds the wait for the receipt, zero waits forever.
	ConfirmTimeout time.Duration
}

type Workflow struct {
	store    Store
	registry Registry
	signer   Signer
	cfg      Config

	form *Form
}

func New(store Store, registry Registry, signer Signer, cfg Config) *Workflow {
	return &Workflow{
		store:    store,
		registry: registry,
		signer:   signer,
		cfg:      cfg,
		form:     NewForm(),
	}
}

func (w *Workflow) Form() *Form {
	return w.form
}

// Submit runs a submission to completion. Submissions are not serialized, a
// second one may start while the first is still waiting on the chain.
func (w *Workflow) Submit(ctx context.Context, in Input) (*Result, error) {
	res := &Result{ID: uuid.New(), Started: time.Now()}

	w.form.SetTitle(in.Title)
	w.form.SetGoal(in.Goal)
	w.form.setStage(StageSubmitting)

	stats.Record(ctx, metrics.CampaignSubmitted.M(1), metrics.CampaignFileSize.M(int64(len(in.File))))

	err := w.submit(ctx, in, res)
	res.Finished = time.Now()

	if err != nil {
		kind, step := Classify(err)
		metrics.RecordFailure(ctx, kind, step)

		log.Errorw("campaign submission failed", "id", res.ID, "kind", kind, "step", step, "error", err.Error())
		w.form.finish(StageFailed, UserMessage(err))
		return res, err
	}

	stats.Record(ctx, metrics.CampaignSucceeded.M(1))
	log.Infow("campaign created", "id", res.ID, "cid", res.ContentID, "tx", res.TxHash.Hex(), "took", res.Finished.Sub(res.Started))
	w.form.finish(StageSucceeded, SuccessMessage)
	return res, nil
}

func (w *Workflow) submit(ctx context.Context, in Input, res *Result) error {
	if in.File == nil {
		return &FileError{Err: xerrors.New("no file selected")}
	}

	// Store
	stop := metrics.Timer(ctx, metrics.StoreDuration)
	added, err := w.store.Add(ctx, bytes.NewReader(in.File))
	stop()
	if err != nil {
		return &StoreError{Step: StepAdd, Err: err}
	}

	contentID := added.Hash
	log.Infow("file stored", "id", res.ID, "cid", contentID, "size", len(in.File))

	res.ContentID = contentID
	res.GatewayURL = ipfs.GatewayURL(w.cfg.GatewayAddress, contentID)
	w.form.setContentID(contentID)

	// Pin into the node's file system
	stop = metrics.Timer(ctx, metrics.PinDuration)
	err = w.store.FilesCp(ctx, ipfs.IPFSPath(contentID), ipfs.MFSPath(contentID))
	stop()
	if err != nil {
		if w.cfg.PinFailureIsFatal {
			return &StoreError{Step: StepPin, Err: err}
		}
		stats.Record(ctx, metrics.PinFailureIgnored.M(1))
		log.Warnw("copying into mfs failed, continuing", "id", res.ID, "cid", contentID, "error", err)
	}

	// Register on chain
	signer, err := w.signer.Signer(ctx)
	if err != nil {
		return &ChainError{Step: StepSigner, Err: err}
	}

	goal, err := types.ParseEther(in.Goal)
	if err != nil {
		return &ChainError{Step: StepGoal, Err: err}
	}

	stop = metrics.Timer(ctx, metrics.ChainSubmitDuration)
	tx, err := w.registry.CreateCampaign(ctx, signer, in.Title, contentID, goal.Wei())
	stop()
	if err != nil {
		return &ChainError{Step: StepSubmit, Err: err}
	}
	res.TxHash = tx.Hash()

	// Confirm
	cctx := ctx
	if w.cfg.ConfirmTimeout > 0 {
		var cancel context.CancelFunc
		cctx, cancel = context.WithTimeout(ctx, w.cfg.ConfirmTimeout)
		defer cancel()
	}

	stop = metrics.Timer(ctx, metrics.ChainConfirmDuration)
	rcpt, err := w.registry.WaitConfirmed(cctx, tx)
	stop()
	if err != nil {
		return &ChainError{Step: StepConfirm, Err: err}
	}
	if rcpt != nil && rcpt.BlockNumber != nil {
		res.BlockNumber = rcpt.BlockNumber.Uint64()
	}

	return nil
}
