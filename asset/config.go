package asset

// DefaultConfigYAML is the built-in game configuration, used when no file is found
const DefaultConfigYAML = `
seed: 0 # 0 = seed from wall clock

screen:
  width: 800
  height: 600

arena:
  width: 2400
  height: 1800

camera:
  enabled: true

debug:
  invincible: false

player:
  start: { x: 1200, y: 900 }
  speed: 500
  size: 20
  color: "#873cbe"
  fire_rate: 4
  projectile:
    speed: 900
    size: 5
    color: "#3c3c3c"

pools:
  enemies: 64
  projectiles: 128

spawner:
  credit_multiplier: 0.3
  credit_exponent: 1.7
  initial_credits: 2.8
  min_spawn_interval: 3
  max_spawn_interval: 6
  minimum_wave_size: 3
  wave_extend_probability: 0.5
  retarget_interval: 0.25
  retarget_probability: 0.1

enemy_types:
  - name: grunt
    cost: 1
    speed: { min: 120, max: 170 }
    size: { min: 14, max: 18 }
    color: "#e62937"
  - name: runner
    cost: 2
    speed: { min: 200, max: 260 }
    size: { min: 10, max: 13 }
    color: "#ffa100"
    turns_into: grunt
  - name: brute
    cost: 4
    speed: { min: 80, max: 110 }
    size: { min: 26, max: 32 }
    color: "#be2137"
    turns_into: runner
  - name: juggernaut
    cost: 8
    speed: { min: 60, max: 80 }
    size: { min: 36, max: 42 }
    color: "#70143c"
    turns_into: brute

boss:
  max_health: 40
  speed: 180
  size: 60
  color: "#c800c8"
  fire_rate: 8
  shots_per_burst: 16
  projectile:
    speed: 450
    size: 8
    color: "#ff6dc2"
  moving_duration: 4
  stationary_duration: 2.5
  reward_score: 10
  reward_points: 1
  first_spawn_score: 40
  threshold_growth: 1.5

shop:
  cost_factor: 1.5
  score_value: 1
  boss_point_value: 25
  upgrades:
    - stat: speed
      cost: 20
      increment: 0.1
    - stat: fire_rate
      cost: 25
      increment: 0.15
    - stat: projectile_speed
      cost: 15
      increment: 0.1
    - stat: projectile_size
      cost: 30
      increment: 0.2
`
