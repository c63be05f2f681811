package rl

import (
	"context"
	"encoding/json"
	"os"
	"path"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/benbaarber/rl/memory"
	"github.com/benbaarber/rl/util"
)

// Recorder receives per-episode results as they are produced, for live
// observation of a running experiment.
type Recorder interface {
	Record(name string, episode int, reward float64)
}

// ExperimentConfig holds the execution parameters shared by the
// experiments of a comparison.
type ExperimentConfig struct {
	// Number of episodes to run
	Episodes int
	// Maximum number of steps per episode; 0 means unbounded
	Horizon int
	// Folder to save reward histories and plots into; empty disables
	// recording
	SavePath string
	// Record per-episode rewards as JSONL under SavePath
	RecordRewards bool
	// Optional live recorder, such as a monitor server
	Recorder Recorder
	// Log progress every LogInterval episodes; 0 disables progress
	// logging
	LogInterval int
}

// Experiment runs one agent in one environment for a number of
// episodes and collects the cumulative reward of each episode.
type Experiment[S, A any] struct {
	Name        string
	agent       Agent[S, A]
	environment Environment[S, A]
	config      *ExperimentConfig

	// cumulative reward per episode, populated by Run
	Rewards []float64
}

// NewExperiment creates a new experiment instance.
func NewExperiment[S, A any](name string, agent Agent[S, A], environment Environment[S, A], config *ExperimentConfig) *Experiment[S, A] {
	return &Experiment[S, A]{
		Name:        name,
		agent:       agent,
		environment: environment,
		config:      config,
		Rewards:     make([]float64, 0, config.Episodes),
	}
}

type episodeRecord struct {
	Episode int     `json:"episode"`
	Reward  float64 `json:"reward"`
}

// Run executes the configured number of episodes, learning after every
// step. Returns the per-episode cumulative rewards. Run stops early if
// the context is canceled.
func (e *Experiment[S, A]) Run(ctx context.Context) []float64 {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().
		Timestamp().
		Str("experiment", e.Name).
		Logger()
	logger.Info().Int("episodes", e.config.Episodes).Msg("running experiment")

	var rewardsFile string
	if e.config.RecordRewards && e.config.SavePath != "" {
		if err := os.MkdirAll(e.config.SavePath, os.ModePerm); err != nil {
			logger.Error().Err(err).Msg("unable to create save folder, recording disabled")
		} else {
			rewardsFile = path.Join(e.config.SavePath, e.Name+"_rewards.jsonl")
		}
	}

	for episode := 0; episode < e.config.Episodes; episode++ {
		select {
		case <-ctx.Done():
			logger.Info().Int("episode", episode).Msg("experiment canceled")
			return e.Rewards
		default:
		}

		reward := e.runEpisode()
		e.Rewards = append(e.Rewards, reward)

		if e.config.Recorder != nil {
			e.config.Recorder.Record(e.Name, episode, reward)
		}
		if rewardsFile != "" {
			bs, err := json.Marshal(episodeRecord{Episode: episode, Reward: reward})
			if err != nil {
				panic(err)
			}
			util.AppendToFile(rewardsFile, string(bs))
		}
		if e.config.LogInterval > 0 && (episode+1)%e.config.LogInterval == 0 {
			logger.Info().
				Int("episode", episode+1).
				Str("progress", strconv.Itoa((episode+1)*100/e.config.Episodes)+"%").
				Float64("reward", reward).
				Msg("episode finished")
		}
	}

	logger.Info().Msg("experiment finished")
	return e.Rewards
}

// runEpisode executes a single episode and returns its cumulative
// reward.
func (e *Experiment[S, A]) runEpisode() float64 {
	state := e.environment.Reset()
	actions := e.environment.Actions()
	cumulative := 0.0

	for step := 0; e.config.Horizon == 0 || step < e.config.Horizon; step++ {
		action := e.agent.Act(state, actions)
		next, reward := e.environment.Step(action)
		cumulative += float64(reward)

		var nextActions []A
		if next != nil {
			nextActions = e.environment.Actions()
		}
		e.agent.Learn(memory.Exp[S, A]{
			State:     state,
			Action:    action,
			NextState: next,
			Reward:    reward,
		}, nextActions)

		if next == nil {
			break
		}
		state = *next
		actions = nextActions
	}

	e.agent.EndEpisode()
	return cumulative
}

// Comparison runs several experiments back to back and plots their
// reward curves on a single figure.
type Comparison[S, A any] struct {
	Experiments []*Experiment[S, A]
	config      *ExperimentConfig
}

// NewComparison creates an empty comparison sharing one config.
func NewComparison[S, A any](config *ExperimentConfig) *Comparison[S, A] {
	return &Comparison[S, A]{
		Experiments: make([]*Experiment[S, A], 0),
		config:      config,
	}
}

// AddExperiment registers an agent/environment pair under a name.
func (c *Comparison[S, A]) AddExperiment(name string, agent Agent[S, A], environment Environment[S, A]) {
	c.Experiments = append(c.Experiments, NewExperiment(name, agent, environment, c.config))
}

// Run executes every experiment and, if a save path is configured,
// writes a comparison plot of the reward curves.
func (c *Comparison[S, A]) Run(ctx context.Context) {
	names := make([]string, len(c.Experiments))
	series := make([][]float64, len(c.Experiments))
	for i, e := range c.Experiments {
		names[i] = e.Name
		series[i] = e.Run(ctx)
	}

	if c.config.SavePath != "" {
		plotFile := path.Join(c.config.SavePath, "rewards.png")
		if err := PlotRewards(plotFile, names, series); err != nil {
			logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
			logger.Error().Err(err).Msg("unable to save reward plot")
		}
	}
}
