package game

import (
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundStart SoundKind = iota
	SoundPickup
	SoundCapture
)

// AudioSystem manages procedural sound effects and the music stream.
type AudioSystem struct {
	ctx         *oto.Context
	ready       chan struct{}
	musicPlayer oto.Player
}

var globalAudio *AudioSystem

var sfxVolume float64 = 0.58
var musicVolume float64 = 0.14
var masterVolume float64 = 1.0

// musicIntensityBits carries a 0..1 tension value from the game loop to the
// chase mixer, stored as float64 bits for atomic access.
var musicIntensityBits uint64

// SetMusicIntensity feeds the chase music with how close the cat is.
func SetMusicIntensity(v float64) {
	atomic.StoreUint64(&musicIntensityBits, math.Float64bits(clampF(v, 0, 1)))
}

func currentMusicIntensity() float64 {
	return math.Float64frombits(atomic.LoadUint64(&musicIntensityBits))
}

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// PlaySound plays a procedurally generated sound effect.
func PlaySound(kind SoundKind) {
	playSoundWithGain(kind, 1.0)
}

func playSoundWithGain(kind SoundKind, gain float64) {
	if globalAudio == nil || gain <= 0 {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		return
	}
	go func() {
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(masterVolume * sfxVolume * clampF(gain, 0, 1))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// SetMasterVolume scales both effects and music; 1.0 is full level.
func SetMasterVolume(vol float64) {
	masterVolume = clampF(vol, 0, 1)
	if globalAudio != nil && globalAudio.musicPlayer != nil {
		globalAudio.musicPlayer.SetVolume(masterVolume * musicVolume)
	}
}

func SetSFXVolume(vol float64) {
	sfxVolume = clampF(vol, 0, 1)
}

func SetMusicVolume(vol float64) {
	musicVolume = clampF(vol, 0, 1)
	if globalAudio != nil && globalAudio.musicPlayer != nil {
		globalAudio.musicPlayer.SetVolume(masterVolume * musicVolume)
	}
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// putStereoF32LR writes independent left/right samples in [-1,1].
func putStereoF32LR(buf []byte, i int, left, right float64) {
	lv := math.Float32bits(float32(left))
	rv := math.Float32bits(float32(right))
	buf[i*8] = byte(lv)
	buf[i*8+1] = byte(lv >> 8)
	buf[i*8+2] = byte(lv >> 16)
	buf[i*8+3] = byte(lv >> 24)
	buf[i*8+4] = byte(rv)
	buf[i*8+5] = byte(rv >> 8)
	buf[i*8+6] = byte(rv >> 16)
	buf[i*8+7] = byte(rv >> 24)
}

// softSat applies gentle tanh-like saturation — no harsh clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
// carrier: base frequency, modRatio: modulator/carrier ratio, modIdx: modulation depth.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

// ---- Sound effects -------------------------------------------------------

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundStart:
		return genStart()
	case SoundPickup:
		return genPickup()
	case SoundCapture:
		return genCapture()
	}
	return nil
}

// genStart: crisp click with a short downward chirp.
func genStart() []byte {
	n := SampleRate * 65 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		freq := 1400 - 700*p
		s := fm(t, freq, 1.0, 0.6) * env * 0.38
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genPickup: two ascending FM bell notes with a thin sparkle layer.
func genPickup() []byte {
	freqs := []float64{783.99, 1046.5} // G5 C6
	noteLen := SampleRate * 55 / 1000
	tail := int(0.10 * SampleRate)
	total := len(freqs)*noteLen + tail
	mix := make([]float64, total)

	for fi, freq := range freqs {
		start := fi * noteLen
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.005, 0.5, 0.05, 0.3)
			s := fm(t, freq, 2.756, 4.5*env) * env * 0.40
			s += math.Sin(2*math.Pi*freq*3*t) * env * 0.06
			mix[start+j] += s
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genCapture: pounce thump, then a slow descending minor chord.
func genCapture() []byte {
	dur := 0.80
	n := int(dur * SampleRate)
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.00}, // E4
		{261.63, 0.14}, // C4
		{220.00, 0.28}, // A3
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.03) // slight pitch drop
			s := fm(t, freq, 2.0, 2.0*env) * env * 0.32
			s += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.1 // sub
			mix[i] += s
		}
	}
	thumpLen := int(0.12 * SampleRate)
	for i := 0; i < n && i < thumpLen; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(thumpLen)
		mix[i] += fm(t, 85, 0.5, 1.1) * math.Exp(-p*14) * 0.5
	}
	buf := makeBuf(n)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// ---- Music system -------------------------------------------------------

type musicReader struct {
	t        float64
	seed     uint64
	menuMode bool
	measure  int
	chordIdx int
}

func StartMenuMusic()  { startMusic(true, 0.24) }
func StartChaseMusic() { startMusic(false, 0.14) }

func StopMusic() {
	if globalAudio != nil && globalAudio.musicPlayer != nil {
		globalAudio.musicPlayer.Close()
		globalAudio.musicPlayer = nil
	}
}

func startMusic(menuMode bool, volume float64) {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	if globalAudio.musicPlayer != nil {
		globalAudio.musicPlayer.Close()
	}
	musicVolume = volume
	reader := &musicReader{
		seed:     uint64(time.Now().UnixNano()),
		menuMode: menuMode,
	}
	player := globalAudio.ctx.NewPlayer(reader)
	player.SetVolume(masterVolume * volume)
	globalAudio.musicPlayer = player
	player.Play()
}

func (m *musicReader) Read(p []byte) (int, error) {
	samples := len(p) / 8
	if samples == 0 {
		return 0, nil
	}
	if m.menuMode {
		return m.readMenuMusic(p, samples)
	}
	return m.readChaseMusic(p, samples)
}

// ---- Music instruments (stateless per-sample, driven by m.t) ------------

// kick returns a kick drum sample given time-since-trigger (trig) in seconds.
func kick(trig float64) float64 {
	if trig > 0.25 {
		return 0
	}
	phase := 2 * math.Pi * 185 / 12.5 * (1 - math.Exp(-trig*12.5))
	body := math.Sin(phase) * math.Exp(-trig*18.0) * 0.80
	click := math.Sin(2*math.Pi*2100*trig) * math.Exp(-trig*250.0) * 0.24
	return softSat(body + click)
}

// snare returns a snare sample given time-since-trigger.
func snare(trig float64, seed *uint64) float64 {
	if trig > 0.2 {
		return 0
	}
	env := math.Exp(-trig * 26.0)
	body := (math.Sin(2*math.Pi*188*trig)*0.24 + math.Sin(2*math.Pi*356*trig)*0.10) * env
	n1 := lcg(seed)
	n2 := lcg(seed)
	bandNoise := (n1 - n2*0.55) * env * (0.55 + 0.25*math.Exp(-trig*8.0))
	snap := math.Sin(2*math.Pi*2800*trig) * math.Exp(-trig*120.0) * 0.10
	return softSat(body + bandNoise + snap)
}

// hihat returns a closed hi-hat sample. open=true for longer decay.
func hihat(trig float64, open bool, seed *uint64) float64 {
	decay := 42.0
	limit := 0.06
	if open {
		decay = 15.0
		limit = 0.18
	}
	if trig > limit {
		return 0
	}
	n := lcg(seed)
	metal := math.Sin(2*math.Pi*7300*trig) + math.Sin(2*math.Pi*9200*trig)*0.6
	s := (n*0.8 + metal*0.2) * math.Exp(-trig*decay) * 0.07
	return softSat(s)
}

// fmBass returns a warm FM bass sample — low modRatio gives smooth tone.
func fmBass(t, freq, env float64) float64 {
	b := fm(t, freq, 0.5, 1.25*env) * env * 0.48
	b += math.Sin(2*math.Pi*freq*t) * env * 0.26
	b += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.10
	return softSat(b)
}

// fmPad returns a lush pad sample from a chord — detuned FM oscillators per note.
func fmPad(t float64, chord []float64, env float64) float64 {
	s := 0.0
	detunes := [4]float64{-0.004, -0.001, 0.002, 0.005}
	for _, freq := range chord {
		for _, d := range detunes {
			f := freq * (1 + d)
			vib := 1 + 0.003*math.Sin(2*math.Pi*(0.23+f*0.0007)*t)
			s += fm(t, f*vib, 1.45, 0.75*env) * 0.048
		}
	}
	return softSat(s)
}

// fmArp returns an FM arpeggio sample for one note.
func fmArp(t, freq, env float64) float64 {
	s := fm(t, freq, 2.0, 3.2*env) * env * 0.20
	s += math.Sin(2*math.Pi*freq*2*t) * env * 0.08
	return softSat(s)
}

func triWave(phase float64) float64 {
	return (2.0 / math.Pi) * math.Asin(math.Sin(phase))
}

// ---- Menu music ---------------------------------------------------------

func (m *musicReader) readMenuMusic(p []byte, samples int) (int, error) {
	chords := [][]float64{
		{220.0, 261.6, 329.6}, // Am
		{174.6, 220.0, 261.6}, // F
		{261.6, 329.6, 392.0}, // C
		{196.0, 246.9, 293.7}, // G
	}
	const tempo = 1.53 // 92 BPM
	const beatsPerChord = 4

	for i := 0; i < samples && i*8+7 < len(p); i++ {
		m.t += 1.0 / SampleRate
		beatLen := 1.0 / tempo
		trig := math.Mod(m.t, beatLen)
		currentBeat := int(m.t * tempo)

		chord := chords[(currentBeat/beatsPerChord)%len(chords)]

		s := fmPad(m.t, chord, 0.6) * 0.8

		// Soft arp on 8ths with an octave bounce.
		step8 := int(m.t*tempo*2) % 8
		arpFreq := chord[step8%len(chord)]
		if step8%2 == 1 {
			arpFreq *= 2
		}
		arpEnv := adsr(math.Mod(m.t*tempo*2, 1.0), 0.01, 0.4, 0.1, 0.25)
		s += fmArp(m.t, arpFreq, arpEnv) * 0.45

		// Sparse kick on the downbeat of each chord.
		if currentBeat%beatsPerChord == 0 {
			s += kick(trig) * 0.5
		}

		bEnv := adsr(math.Mod(m.t*tempo, 1.0), 0.04, 0.5, 0.3, 0.2)
		s += fmBass(m.t, chord[0]/2, bEnv) * 0.5

		s = softSat(s * 0.85)
		pan := 0.10 * math.Sin(2*math.Pi*0.09*m.t)
		sparkle := triWave(2*math.Pi*chord[2]*2*m.t) * 0.01
		left := softSat(s*(1-pan) + sparkle)
		right := softSat(s*(1+pan) - sparkle)
		putStereoF32LR(p, i, left, right)
	}
	return len(p), nil
}

// ---- Chase music --------------------------------------------------------

func (m *musicReader) readChaseMusic(p []byte, samples int) (int, error) {
	chords := [][]float64{
		{110.0, 130.8, 164.8}, // Am
		{98.0, 123.5, 146.8},  // G
		{87.3, 110.0, 130.8},  // F
		{82.4, 103.8, 123.5},  // E
	}
	const tempo = 2.33 // 140 BPM
	intensity := currentMusicIntensity()

	for i := 0; i < samples && i*8+7 < len(p); i++ {
		m.t += 1.0 / SampleRate
		beatLen := 1.0 / tempo
		trig := math.Mod(m.t, beatLen)
		currentBeat := int(m.t * tempo)

		if currentBeat/2 != m.measure {
			m.measure = currentBeat / 2
			m.chordIdx = (m.chordIdx + 1) % len(chords)
		}
		chord := chords[m.chordIdx]

		s := fmPad(m.t, chord, 0.45) * 0.55

		// Driving bass on 8ths.
		step8Trig := math.Mod(m.t*tempo*2, 1.0) / (tempo * 2)
		step8 := int(m.t*tempo*2) % 8
		bassFreq := chord[0]
		if step8 == 3 || step8 == 7 {
			bassFreq = chord[1]
		}
		s += fmBass(m.t, bassFreq, math.Exp(-step8Trig*11)) * 0.85

		// Four-on-the-floor kick, snare on 2 and 4.
		s += kick(trig) * 0.9
		if currentBeat%2 == 1 {
			s += snare(trig, &m.seed) * 0.7
		}

		// Hats thicken as the cat closes in.
		step16Trig := math.Mod(m.t*tempo*4, 1.0) / (tempo * 4)
		step16 := int(m.t*tempo*4) % 4
		if step16 == 2 {
			s += hihat(step16Trig, false, &m.seed) * (0.6 + 0.8*intensity)
		} else if step16 == 0 && intensity > 0.45 {
			s += hihat(step16Trig, true, &m.seed) * 0.5 * intensity
		}

		// Urgent arp layer rides the tension.
		if intensity > 0.15 {
			arpFreq := chord[step16%len(chord)] * 4
			s += fmArp(m.t, arpFreq, math.Exp(-step16Trig*16)) * (0.65 * intensity)
		}

		duck := 1.0 - 0.16*math.Exp(-trig*20.0)
		s = softSat(s * duck * 0.9)
		pan := 0.08 * math.Sin(2*math.Pi*0.11*m.t)
		left := softSat(s * (1 - pan))
		right := softSat(s * (1 + pan))
		putStereoF32LR(p, i, left, right)
	}
	return len(p), nil
}
